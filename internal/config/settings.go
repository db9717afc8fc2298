package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultModel         = "gemini-2.0-flash"
	DefaultQuestionCount = 5
	DefaultTimeout       = 60 * time.Second

	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/"
)

type Transport string

const (
	TransportREST Transport = "rest"
	TransportSDK  Transport = "sdk"
)

type GeminiSettings struct {
	APIKey    string
	Model     string
	Endpoint  string
	Transport Transport
	Timeout   time.Duration
}

// PlatformSettings holds identifiers inherited from the hosting platform
// template. Nothing reads them beyond startup logging.
type PlatformSettings struct {
	AppID            string
	FirebaseConfig   string
	InitialAuthToken string
}

type DatabaseSettings struct {
	Driver string
	DSN    string
}

func (d DatabaseSettings) Enabled() bool {
	return d.Driver != ""
}

type Settings struct {
	Gemini        GeminiSettings
	Platform      PlatformSettings
	Database      DatabaseSettings
	QuestionCount int
	HTTPAddr      string
	CORSOrigins   []string
	Timezone      string
}

// Load reads Settings from the environment, after merging a .env file
// from the working directory if one exists.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		Logger.WithError(err).Warn("could not read .env file")
	}
	return FromEnv()
}

func FromEnv() (Settings, error) {
	model := envOr("GEMINI_MODEL", DefaultModel)

	apiKey, err := geminiKey()
	if err != nil {
		return Settings{}, err
	}

	timeout := DefaultTimeout
	if raw := os.Getenv("GEMINI_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Settings{}, fmt.Errorf("invalid GEMINI_TIMEOUT %q", raw)
		}
		timeout = d
	}

	transport := Transport(strings.ToLower(envOr("GEMINI_TRANSPORT", string(TransportREST))))
	if transport != TransportREST && transport != TransportSDK {
		return Settings{}, fmt.Errorf("invalid GEMINI_TRANSPORT %q", transport)
	}

	count := DefaultQuestionCount
	if raw := os.Getenv("QUIZ_QUESTION_COUNT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Settings{}, fmt.Errorf("invalid QUIZ_QUESTION_COUNT %q", raw)
		}
		count = n
	}

	db := DatabaseSettings{
		Driver: strings.ToLower(os.Getenv("DB_DRIVER")),
		DSN:    os.Getenv("DATABASE_DSN"),
	}
	if db.Driver == "" && db.DSN != "" {
		db.Driver = "postgres"
	}

	return Settings{
		Gemini: GeminiSettings{
			APIKey:    apiKey,
			Model:     model,
			Endpoint:  envOr("GEMINI_API_URL", geminiBaseURL+model+":generateContent"),
			Transport: transport,
			Timeout:   timeout,
		},
		Platform: PlatformSettings{
			AppID:            envOr("CANVAS_APP_ID", "flet-quiz-app"),
			FirebaseConfig:   envOr("CANVAS_FIREBASE_CONFIG", "{}"),
			InitialAuthToken: os.Getenv("CANVAS_INITIAL_AUTH_TOKEN"),
		},
		Database:      db,
		QuestionCount: count,
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		Timezone:      envOr("APP_TIMEZONE", "Europe/Amsterdam"),
	}, nil
}

// geminiKey prefers the plain key and falls back to the encrypted one.
// A missing key is not an error here: it is reported per request.
func geminiKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}
	enc := strings.TrimSpace(os.Getenv("GEMINI_API_KEY_ENCRYPTED"))
	if enc == "" {
		return "", nil
	}
	c, err := NewCipher(os.Getenv("CRYPTO_KEY"))
	if err != nil {
		return "", fmt.Errorf("GEMINI_API_KEY_ENCRYPTED set: %w", err)
	}
	key, err := c.Decrypt(enc)
	if err != nil {
		return "", fmt.Errorf("decrypt GEMINI_API_KEY_ENCRYPTED: %w", err)
	}
	return strings.TrimSpace(key), nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

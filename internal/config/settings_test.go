package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"GEMINI_API_KEY", "GEMINI_API_KEY_ENCRYPTED", "GEMINI_MODEL", "GEMINI_API_URL",
		"GEMINI_TRANSPORT", "GEMINI_TIMEOUT", "QUIZ_QUESTION_COUNT", "DB_DRIVER",
		"DATABASE_DSN", "CORS_ORIGINS", "CANVAS_APP_ID",
	} {
		t.Setenv(k, "")
	}

	s, err := config.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if s.Gemini.APIKey != "" {
		t.Errorf("expected empty key, got %q", s.Gemini.APIKey)
	}
	if s.Gemini.Model != config.DefaultModel {
		t.Errorf("model: got %q", s.Gemini.Model)
	}
	want := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	if s.Gemini.Endpoint != want {
		t.Errorf("endpoint: got %q, want %q", s.Gemini.Endpoint, want)
	}
	if s.Gemini.Transport != config.TransportREST {
		t.Errorf("transport: got %q", s.Gemini.Transport)
	}
	if s.Gemini.Timeout != config.DefaultTimeout {
		t.Errorf("timeout: got %v", s.Gemini.Timeout)
	}
	if s.QuestionCount != 5 {
		t.Errorf("question count: got %d", s.QuestionCount)
	}
	if s.Database.Enabled() {
		t.Error("database should be disabled without DB_DRIVER")
	}
	if s.Platform.AppID != "flet-quiz-app" || s.Platform.FirebaseConfig != "{}" {
		t.Errorf("platform defaults: %+v", s.Platform)
	}
	if len(s.CORSOrigins) != 1 || s.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("cors origins: %v", s.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  abc  ")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("GEMINI_API_URL", "")
	t.Setenv("GEMINI_TRANSPORT", "SDK")
	t.Setenv("GEMINI_TIMEOUT", "15s")
	t.Setenv("QUIZ_QUESTION_COUNT", "3")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_DSN", "postgres://localhost/overhoor")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	s, err := config.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if s.Gemini.APIKey != "abc" {
		t.Errorf("key not trimmed: %q", s.Gemini.APIKey)
	}
	if s.Gemini.Endpoint != "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("endpoint does not follow model: %q", s.Gemini.Endpoint)
	}
	if s.Gemini.Transport != config.TransportSDK {
		t.Errorf("transport: %q", s.Gemini.Transport)
	}
	if s.Gemini.Timeout != 15*time.Second {
		t.Errorf("timeout: %v", s.Gemini.Timeout)
	}
	if s.QuestionCount != 3 {
		t.Errorf("question count: %d", s.QuestionCount)
	}
	if s.Database.Driver != "postgres" {
		t.Errorf("driver should default to postgres with a DSN, got %q", s.Database.Driver)
	}
	if len(s.CORSOrigins) != 2 {
		t.Errorf("cors origins: %v", s.CORSOrigins)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	cases := map[string]string{
		"GEMINI_TIMEOUT":      "soon",
		"GEMINI_TRANSPORT":    "grpc",
		"QUIZ_QUESTION_COUNT": "-1",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("GEMINI_TIMEOUT", "")
			t.Setenv("GEMINI_TRANSPORT", "")
			t.Setenv("QUIZ_QUESTION_COUNT", "")
			t.Setenv(k, v)
			if _, err := config.FromEnv(); err == nil {
				t.Errorf("expected error for %s=%q", k, v)
			}
		})
	}
}

func TestFromEnvEncryptedKey(t *testing.T) {
	c, err := config.NewCipher(testKey)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := c.Encrypt("secret-key")
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_ENCRYPTED", enc)

	t.Run("Decrypts", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", testKey)
		s, err := config.FromEnv()
		if err != nil {
			t.Fatalf("FromEnv failed: %v", err)
		}
		if s.Gemini.APIKey != "secret-key" {
			t.Errorf("got key %q", s.Gemini.APIKey)
		}
	})

	t.Run("MissingCryptoKey", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", "")
		if _, err := config.FromEnv(); err == nil {
			t.Error("expected error without CRYPTO_KEY")
		}
	})
}

package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/overhoor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	generationlog "github.com/saulo-duarte/overhoor-lambda/internal/generation_log"
	"github.com/saulo-duarte/overhoor-lambda/internal/router"
	util "github.com/saulo-duarte/overhoor-lambda/internal/utils"
)

type Container struct {
	Settings               config.Settings
	AIQuizContainer        *aiquiz.AIQuizContainer
	GenerationLogContainer *generationlog.Container
}

// New loads settings and builds every component. The generation log is
// only wired when a database driver is configured.
func New(ctx context.Context) (*Container, error) {
	config.Init()

	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return NewWithSettings(ctx, settings)
}

func NewWithSettings(ctx context.Context, settings config.Settings) (*Container, error) {
	log := config.WithContext(ctx)

	if err := util.SetLocation(settings.Timezone); err != nil {
		log.WithError(err).Warnf("unknown APP_TIMEZONE %q, keeping default", settings.Timezone)
	}

	log.WithField("app_id", settings.Platform.AppID).
		WithField("transport", settings.Gemini.Transport).
		WithField("model", settings.Gemini.Model).
		Info("starting quiz generator")
	if settings.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set, generation requests will be rejected")
	}

	c := &Container{Settings: settings}

	var recorder aiquiz.Recorder
	if settings.Database.Enabled() {
		db, err := config.Connect(ctx, settings.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		if err := generationlog.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate generation log: %w", err)
		}
		c.GenerationLogContainer = generationlog.NewContainer(db)
		recorder = c.GenerationLogContainer.Service
	}

	c.AIQuizContainer = aiquiz.NewAIQuizContainer(settings, recorder)
	return c, nil
}

func (c *Container) RouterConfig() router.RouterConfig {
	cfg := router.RouterConfig{
		AIQuizHandler: c.AIQuizContainer.Handler,
		CORSOrigins:   c.Settings.CORSOrigins,
	}
	if c.GenerationLogContainer != nil {
		cfg.GenerationLogHandler = c.GenerationLogContainer.Handler
	}
	return cfg
}

package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	"github.com/saulo-duarte/overhoor-lambda/internal/container"
	"github.com/saulo-duarte/overhoor-lambda/internal/router"
)

func settings() config.Settings {
	return config.Settings{
		Gemini: config.GeminiSettings{
			Model:     config.DefaultModel,
			Endpoint:  "http://127.0.0.1:0/unused",
			Transport: config.TransportREST,
			Timeout:   config.DefaultTimeout,
		},
		QuestionCount: config.DefaultQuestionCount,
		Timezone:      "Europe/Amsterdam",
	}
}

func TestNewWithSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("WithoutDatabase", func(t *testing.T) {
		c, err := container.NewWithSettings(ctx, settings())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.GenerationLogContainer != nil {
			t.Error("generation log should not be wired without a database")
		}
		if c.AIQuizContainer == nil || c.AIQuizContainer.Handler == nil {
			t.Fatal("ai quiz container missing")
		}
		if c.RouterConfig().GenerationLogHandler != nil {
			t.Error("router config should carry no generation log handler")
		}
	})

	t.Run("WithSQLite", func(t *testing.T) {
		s := settings()
		s.Database = config.DatabaseSettings{
			Driver: "sqlite",
			DSN:    filepath.Join(t.TempDir(), "overhoor.db"),
		}

		c, err := container.NewWithSettings(ctx, s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.GenerationLogContainer == nil {
			t.Fatal("generation log should be wired")
		}

		rec := httptest.NewRecorder()
		router.New(c.RouterConfig()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generations", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET /generations: status %d", rec.Code)
		}
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		s := settings()
		s.Database = config.DatabaseSettings{Driver: "oracle"}
		if _, err := container.NewWithSettings(ctx, s); err == nil {
			t.Error("expected an error for an unknown driver")
		}
	})
}

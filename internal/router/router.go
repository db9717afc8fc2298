package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/overhoor-lambda/docs"
	"github.com/saulo-duarte/overhoor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	generationlog "github.com/saulo-duarte/overhoor-lambda/internal/generation_log"
	"github.com/saulo-duarte/overhoor-lambda/internal/middlewares"
)

type RouterConfig struct {
	AIQuizHandler *aiquiz.Handler
	// GenerationLogHandler is nil when no database is configured.
	GenerationLogHandler *generationlog.Handler
	CORSOrigins          []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))

	if cfg.GenerationLogHandler != nil {
		r.Mount("/generations", generationlog.Routes(cfg.GenerationLogHandler))
	}
	return r
}

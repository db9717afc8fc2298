package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/overhoor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	"github.com/saulo-duarte/overhoor-lambda/internal/router"
)

type staticGenerator struct{}

func (staticGenerator) Name() string { return "static" }

func (staticGenerator) Generate(ctx context.Context, p aiquiz.RequestPayload) (aiquiz.QuizSet, error) {
	return aiquiz.QuizSet{{Prompt: "Q", Options: []string{"a", "b", "c", "d"}, CorrectOption: "a"}}, nil
}

func newRouter() http.Handler {
	svc := aiquiz.NewService(aiquiz.NewBuilder(5), staticGenerator{}, config.GeminiSettings{APIKey: "k"}, nil)
	return router.New(router.RouterConfig{
		AIQuizHandler: aiquiz.NewHandler(svc),
		CORSOrigins:   []string{"http://localhost:3000"},
	})
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected healthz response: %d %s", rec.Code, rec.Body)
	}
}

func TestAIQuizMounted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ai-quiz", strings.NewReader(`{"summary":"De maan draait om de aarde."}`))
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: %q", ct)
	}
}

func TestGenerationsNotMountedWithoutDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generations", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/ai-quiz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin: %q", got)
	}
}

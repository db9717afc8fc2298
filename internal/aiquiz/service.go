package aiquiz

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	util "github.com/saulo-duarte/overhoor-lambda/internal/utils"
)

type Service interface {
	GenerateQuiz(ctx context.Context, summary string) (*GeneratedQuiz, error)
}

// Recorder receives one outcome per generation attempt that reached the
// provider.
type Recorder interface {
	RecordGeneration(ctx context.Context, outcome GenerationOutcome) error
}

type service struct {
	builder  *Builder
	provider Provider
	gemini   config.GeminiSettings
	recorder Recorder
}

// NewService wires the builder and provider together. recorder may be nil.
func NewService(builder *Builder, provider Provider, gemini config.GeminiSettings, recorder Recorder) Service {
	return &service{
		builder:  builder,
		provider: provider,
		gemini:   gemini,
		recorder: recorder,
	}
}

func (s *service) GenerateQuiz(ctx context.Context, summary string) (*GeneratedQuiz, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(summary) == "" {
		return nil, ErrEmptySummary
	}
	if strings.TrimSpace(s.gemini.APIKey) == "" {
		log.Warn("[AIQUIZ] generation requested without a gemini api key")
		return nil, ErrMissingCredential
	}

	payload, err := s.builder.Build(summary)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	start := time.Now()
	questions, err := s.provider.Generate(ctx, payload)
	elapsed := time.Since(start)

	outcome := GenerationOutcome{
		QuizID:       id,
		SummaryChars: utf8.RuneCountInString(summary),
		Model:        s.gemini.Model,
		Transport:    s.provider.Name(),
		Duration:     elapsed,
	}
	if err != nil {
		outcome.Status = OutcomeFailed
		outcome.ErrorKind = KindOf(err)
		s.record(ctx, outcome)
		log.WithError(err).WithField("kind", outcome.ErrorKind).Error("[AIQUIZ] generation failed")
		return nil, err
	}

	outcome.Status = OutcomeSuccess
	outcome.QuestionCount = len(questions)
	s.record(ctx, outcome)

	log.WithField("quiz_id", id.String()).Infof("[AIQUIZ] generated %d questions in %s", len(questions), elapsed.Truncate(time.Millisecond))
	return &GeneratedQuiz{
		ID:          id,
		GeneratedAt: util.Now(),
		Questions:   questions,
	}, nil
}

func (s *service) record(ctx context.Context, outcome GenerationOutcome) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordGeneration(ctx, outcome); err != nil {
		config.WithContext(ctx).WithError(err).Warn("[AIQUIZ] could not record generation outcome")
	}
}

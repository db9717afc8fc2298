package generation_log

import (
	"context"

	"github.com/saulo-duarte/overhoor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	util "github.com/saulo-duarte/overhoor-lambda/internal/utils"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type Service interface {
	RecordGeneration(ctx context.Context, outcome aiquiz.GenerationOutcome) error
	ListRecent(ctx context.Context, limit int) ([]GenerationRecordResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordGeneration(ctx context.Context, outcome aiquiz.GenerationOutcome) error {
	rec := &GenerationRecord{
		QuizID:        outcome.QuizID,
		Status:        string(outcome.Status),
		ErrorKind:     string(outcome.ErrorKind),
		QuestionCount: outcome.QuestionCount,
		SummaryChars:  outcome.SummaryChars,
		Model:         outcome.Model,
		Transport:     outcome.Transport,
		DurationMS:    outcome.Duration.Milliseconds(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return err
	}
	config.WithContext(ctx).WithField("record_id", rec.ID.String()).Debug("generation recorded")
	return nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]GenerationRecordResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]GenerationRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toResponse(&records[i]))
	}
	return responses, nil
}

func toResponse(r *GenerationRecord) GenerationRecordResponse {
	return GenerationRecordResponse{
		ID:            r.ID,
		QuizID:        r.QuizID,
		Status:        r.Status,
		ErrorKind:     r.ErrorKind,
		QuestionCount: r.QuestionCount,
		SummaryChars:  r.SummaryChars,
		Model:         r.Model,
		Transport:     r.Transport,
		DurationMS:    r.DurationMS,
		CreatedAt:     util.LocalDateTime{Time: r.CreatedAt},
	}
}

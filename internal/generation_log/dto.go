package generation_log

import (
	"github.com/google/uuid"

	util "github.com/saulo-duarte/overhoor-lambda/internal/utils"
)

type GenerationRecordResponse struct {
	ID            uuid.UUID          `json:"id"`
	QuizID        uuid.UUID          `json:"quiz_id"`
	Status        string             `json:"status"`
	ErrorKind     string             `json:"error_kind,omitempty"`
	QuestionCount int                `json:"question_count"`
	SummaryChars  int                `json:"summary_chars"`
	Model         string             `json:"model"`
	Transport     string             `json:"transport"`
	DurationMS    int64              `json:"duration_ms"`
	CreatedAt     util.LocalDateTime `json:"created_at"`
}

package generation_log

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenerationRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID `gorm:"type:uuid;index" json:"quiz_id"`
	Status        string    `gorm:"type:varchar(16);not null" json:"status"`
	ErrorKind     string    `gorm:"type:varchar(32)" json:"error_kind,omitempty"`
	QuestionCount int       `gorm:"not null;default:0" json:"question_count"`
	SummaryChars  int       `gorm:"not null;default:0" json:"summary_chars"`
	Model         string    `gorm:"type:varchar(64)" json:"model"`
	Transport     string    `gorm:"type:varchar(16)" json:"transport"`
	DurationMS    int64     `gorm:"not null;default:0" json:"duration_ms"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (r *GenerationRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

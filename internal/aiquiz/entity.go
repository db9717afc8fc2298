package aiquiz

import (
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	util "github.com/saulo-duarte/overhoor-lambda/internal/utils"
)

type Question struct {
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

// QuizSet keeps the order the model returned the questions in.
type QuizSet []Question

type AnswerEvaluation struct {
	QuestionIndex int    `json:"question_index"`
	Selected      string `json:"selected"`
	Correct       string `json:"correct"`
	IsCorrect     bool   `json:"is_correct"`
}

type GeneratedQuiz struct {
	ID          uuid.UUID          `json:"id"`
	GeneratedAt util.LocalDateTime `json:"generated_at"`
	Questions   QuizSet            `json:"questions"`
}

// RequestPayload is the generateContent request body.
type RequestPayload struct {
	Contents         []*genai.Content `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type GenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *genai.Schema `json:"responseSchema"`
}

// Prompt returns the text of the first user turn.
func (p RequestPayload) Prompt() string {
	for _, c := range p.Contents {
		if c == nil {
			continue
		}
		for _, part := range c.Parts {
			if part != nil && part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
)

// GenerationOutcome describes one finished generation attempt. It carries
// no summary text and no questions.
type GenerationOutcome struct {
	QuizID        uuid.UUID
	Status        OutcomeStatus
	ErrorKind     Kind
	QuestionCount int
	SummaryChars  int
	Model         string
	Transport     string
	Duration      time.Duration
}

type GenerateRequest struct {
	Summary string `json:"summary"`
}

type EvaluateRequest struct {
	Questions     QuizSet `json:"questions"`
	QuestionIndex int     `json:"question_index"`
	Selected      string  `json:"selected"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  Kind   `json:"kind,omitempty"`
}

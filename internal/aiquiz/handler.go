package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary  Generate multiple-choice questions from a summary
// @Tags     ai-quiz
// @Accept   json
// @Produce  json
// @Param    request body GenerateRequest true "summary to quiz on"
// @Success  201 {object} GeneratedQuiz
// @Failure  400 {object} ErrorResponse
// @Failure  502 {object} ErrorResponse
// @Failure  503 {object} ErrorResponse
// @Router   /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid generate request body")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: KindValidation})
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), req.Summary)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).Errorf("Failed to generate questions: %v", err)
		}
		config.JSON(w, status, ErrorResponse{Error: err.Error(), Kind: KindOf(err)})
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

// Evaluate godoc
// @Summary  Score one selected answer against the quiz it belongs to
// @Tags     ai-quiz
// @Accept   json
// @Produce  json
// @Param    request body EvaluateRequest true "quiz, question index and selected option"
// @Success  200 {object} AnswerEvaluation
// @Failure  400 {object} ErrorResponse
// @Router   /ai-quiz/evaluate [post]
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid evaluate request body")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: KindValidation})
		return
	}

	result, err := Evaluate(req.Questions, req.QuestionIndex, req.Selected)
	if err != nil {
		log.WithError(err).WithField("question_index", req.QuestionIndex).Error("answer submitted for unknown question")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: KindValidation})
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrEmptySummary):
		return http.StatusBadRequest
	}
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindTransport, KindMalformedEnvelope, KindInvalidJSON:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

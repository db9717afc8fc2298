package aiquiz

import "github.com/saulo-duarte/overhoor-lambda/internal/config"

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(s config.Settings, recorder Recorder) *AIQuizContainer {
	builder := NewBuilder(s.QuestionCount)
	provider := NewProvider(s.Gemini, nil)
	service := NewService(builder, provider, s.Gemini, recorder)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}

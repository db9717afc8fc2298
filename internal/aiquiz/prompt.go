package aiquiz

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Keys the model is asked to use for each question object.
const (
	fieldQuestion = "vraag"
	fieldOptions  = "antwoorden"
	fieldCorrect  = "correct_antwoord"
)

const promptTemplate = "Creëer %d meerkeuzevragen (inclusief het juiste antwoord en 3 onjuiste antwoorden) gebaseerd op de volgende samenvatting. " +
	"Geef de uitvoer op in een strikt JSON-formaat, met een array van objecten, waarbij elk object een '" + fieldQuestion + "' (string), " +
	"een array '" + fieldOptions + "' (van strings, inclusief alle 4 opties) en '" + fieldCorrect + "' (string) bevat. " +
	"Zorg ervoor dat het JSON-formaat correct is en gemakkelijk kan worden geparset. " +
	"Samenvatting: \n\n%s"

type Builder struct {
	questionCount int
}

func NewBuilder(questionCount int) *Builder {
	if questionCount <= 0 {
		questionCount = 5
	}
	return &Builder{questionCount: questionCount}
}

// Build embeds summary verbatim in the prompt. Only surrounding
// whitespace is checked; the text itself is not sanitized.
func (b *Builder) Build(summary string) (RequestPayload, error) {
	if strings.TrimSpace(summary) == "" {
		return RequestPayload{}, ErrEmptySummary
	}

	prompt := fmt.Sprintf(promptTemplate, b.questionCount, summary)

	return RequestPayload{
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		GenerationConfig: GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   QuizSchema(),
		},
	}, nil
}

// QuizSchema constrains the response to an array of question objects.
func QuizSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				fieldQuestion: {Type: genai.TypeString},
				fieldOptions: {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				fieldCorrect: {Type: genai.TypeString},
			},
			PropertyOrdering: []string{fieldQuestion, fieldOptions, fieldCorrect},
		},
	}
}

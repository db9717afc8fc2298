package aiquiz

import (
	"encoding/json"
	"strings"
)

// MissingQuestionText stands in for a question object without a prompt.
const MissingQuestionText = "Geen vraag gevonden"

type envelope struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type generatedQuestion struct {
	Question *string  `json:"vraag"`
	Options  []string `json:"antwoorden"`
	Correct  *string  `json:"correct_antwoord"`
}

// Parse extracts the generated text from a generateContent response body
// and decodes it into a QuizSet.
func Parse(body []byte) (QuizSet, error) {
	text, err := extractText(body)
	if err != nil {
		return nil, err
	}
	return ParseText(text)
}

func extractText(body []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", newError(KindMalformedEnvelope, "response is not a JSON envelope", err)
	}
	if len(env.Candidates) == 0 {
		return "", newError(KindMalformedEnvelope, "response has no candidates", nil)
	}
	content := env.Candidates[0].Content
	if content == nil {
		return "", newError(KindMalformedEnvelope, "candidate has no content", nil)
	}
	if len(content.Parts) == 0 || content.Parts[0].Text == nil {
		return "", newError(KindMalformedEnvelope, "content has no text part", nil)
	}
	return *content.Parts[0].Text, nil
}

// ParseText decodes the generated fragment, after removing a markdown
// code fence if the whole fragment is wrapped in one.
func ParseText(text string) (QuizSet, error) {
	raw := StripFence(text)

	var items []*generatedQuestion
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, newError(KindInvalidJSON, "generated text is not a JSON array of questions", err)
	}

	quiz := make(QuizSet, 0, len(items))
	for _, it := range items {
		quiz = append(quiz, it.toQuestion())
	}
	return quiz, nil
}

func (g *generatedQuestion) toQuestion() Question {
	q := Question{
		Prompt:  MissingQuestionText,
		Options: []string{},
	}
	if g == nil {
		return q
	}
	if g.Question != nil {
		q.Prompt = *g.Question
	}
	if g.Options != nil {
		q.Options = g.Options
	}
	if g.Correct != nil {
		q.CorrectOption = *g.Correct
	}
	return q
}

// StripFence removes a leading "```json" (or bare "```") line and a
// trailing "```" when both are present. Other text is returned trimmed.
func StripFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasSuffix(s, "```") {
		return s
	}
	var open string
	switch {
	case strings.HasPrefix(s, "```json"):
		open = "```json"
	case strings.HasPrefix(s, "```"):
		open = "```"
	default:
		return s
	}
	if len(s) < len(open)+len("```") {
		return s
	}
	return strings.TrimSpace(s[len(open) : len(s)-len("```")])
}

// Evaluate compares selected with the stored correct option using exact
// string equality. quiz is not modified.
func Evaluate(quiz QuizSet, index int, selected string) (AnswerEvaluation, error) {
	if index < 0 || index >= len(quiz) {
		return AnswerEvaluation{}, ErrQuestionIndex
	}
	correct := quiz[index].CorrectOption
	return AnswerEvaluation{
		QuestionIndex: index,
		Selected:      selected,
		Correct:       correct,
		IsCorrect:     selected == correct,
	}, nil
}

package session

import (
	"errors"
	"fmt"

	"github.com/saulo-duarte/overhoor-lambda/internal/aiquiz"
)

const (
	MsgEmptySummary      = "Plak eerst een samenvatting in het tekstveld voordat u vragen genereert."
	MsgMissingCredential = "Geen Gemini API-sleutel gevonden. Stel GEMINI_API_KEY in als omgevingsvariabele."
	MsgBusy              = "Er worden al vragen gegenereerd, even geduld."
	MsgUnexpectedAnswer  = "Kon geen quizvragen genereren. De API gaf een onverwacht antwoord."
	MsgNoQuestions       = "De API gaf geen vragen terug. Probeer het opnieuw met een langere samenvatting."

	msgTransport       = "Netwerkfout bij het verbinden met de Gemini API: %v"
	msgInvalidJSON     = "Fout bij het parsen van het JSON-antwoord van de API. Dit kan duiden op een ongeldig formaat van de AI: %v"
	msgUnknown         = "Een onverwachte fout is opgetreden: %v"
	msgUnknownQuestion = "Interne fout: antwoord ontvangen voor onbekende vraag %d."

	msgCorrect   = "Correct! '%s'"
	msgIncorrect = "Niet correct. Het juiste antwoord was: '%s'"
)

// StatusMessage turns a failed cycle into the text shown to the user.
func StatusMessage(err error) string {
	switch {
	case errors.Is(err, aiquiz.ErrEmptySummary):
		return MsgEmptySummary
	case errors.Is(err, aiquiz.ErrMissingCredential):
		return MsgMissingCredential
	}

	var qe *aiquiz.Error
	if errors.As(err, &qe) {
		detail := error(qe)
		if qe.Err != nil {
			detail = qe.Err
		}
		switch qe.Kind {
		case aiquiz.KindTransport:
			return fmt.Sprintf(msgTransport, qe)
		case aiquiz.KindMalformedEnvelope:
			return MsgUnexpectedAnswer
		case aiquiz.KindInvalidJSON:
			return fmt.Sprintf(msgInvalidJSON, detail)
		}
	}
	return fmt.Sprintf(msgUnknown, err)
}

func feedbackFor(ev aiquiz.AnswerEvaluation) Feedback {
	fb := Feedback{
		Answered:  true,
		Selected:  ev.Selected,
		IsCorrect: ev.IsCorrect,
	}
	if ev.IsCorrect {
		fb.Message = fmt.Sprintf(msgCorrect, ev.Correct)
	} else {
		fb.Message = fmt.Sprintf(msgIncorrect, ev.Correct)
	}
	return fb
}

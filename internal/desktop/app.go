// Package desktop is the fyne front-end: a summary field, a generate
// button, a busy indicator, a status line and one card per question.
package desktop

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	"github.com/saulo-duarte/overhoor-lambda/internal/session"
)

const (
	windowTitle = "Samenvatting Overhoor App"
	subtitle    = "Plak je samenvatting en laat Gemini API je overhoren met meerkeuzevragen."
)

type App struct {
	win     fyne.Window
	session *session.Session

	summary  *widget.Entry
	generate *widget.Button
	busy     *widget.ProgressBarInfinite
	status   *widget.Label
	heading  *widget.Label
	quizArea *fyne.Container

	radios   []*widget.RadioGroup
	feedback []*widget.Label

	renderedCycle uuid.UUID
}

func New(a fyne.App, gen session.Generator, hasCredential bool) *App {
	return newApp(a, gen, hasCredential, fyne.Do)
}

func newApp(a fyne.App, gen session.Generator, hasCredential bool, dispatch func(func())) *App {
	v := &App{win: a.NewWindow(windowTitle)}
	v.session = session.New(gen,
		session.WithDispatcher(dispatch),
		session.WithListener(v),
		session.WithCredential(hasCredential),
	)

	v.summary = widget.NewMultiLineEntry()
	v.summary.SetPlaceHolder("Type of plak hier de tekst die je wilt overhoren (bijv. aantekeningen, een hoofdstuk).")
	v.summary.SetMinRowsVisible(10)
	v.summary.Wrapping = fyne.TextWrapWord

	v.generate = widget.NewButtonWithIcon("Onderwerpen Overhoren", theme.DocumentCreateIcon(), v.onGenerate)
	v.generate.Importance = widget.HighImportance

	v.busy = widget.NewProgressBarInfinite()
	v.busy.Stop()
	v.busy.Hide()

	v.status = widget.NewLabel("")
	v.status.Wrapping = fyne.TextWrapWord
	v.status.Importance = widget.DangerImportance

	v.heading = widget.NewLabelWithStyle("Quiz Vragen", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.heading.Hide()
	v.quizArea = container.NewVBox()

	title := widget.NewLabelWithStyle(windowTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sub := widget.NewLabelWithStyle(subtitle, fyne.TextAlignCenter, fyne.TextStyle{})

	content := container.NewVBox(
		title,
		sub,
		widget.NewSeparator(),
		widget.NewLabel("Plak hier je samenvatting"),
		v.summary,
		container.NewBorder(nil, nil, v.generate, nil, v.busy),
		v.status,
		widget.NewSeparator(),
		v.heading,
		v.quizArea,
	)

	v.win.SetContent(container.NewVScroll(container.NewPadded(content)))
	v.win.Resize(fyne.NewSize(800, 600))
	return v
}

func (v *App) Window() fyne.Window { return v.win }

func (v *App) onGenerate() {
	err := v.session.Submit(context.Background(), v.summary.Text)
	if errors.Is(err, session.ErrBusy) {
		config.Logger.Debug("[DESKTOP] generate clicked while busy")
	}
}

// StateChanged implements session.Listener.
func (v *App) StateChanged(snap session.Snapshot) {
	v.status.SetText(snap.Status)

	if snap.Busy() {
		v.generate.Disable()
		v.busy.Show()
		v.busy.Start()
	} else {
		v.busy.Stop()
		v.busy.Hide()
		v.generate.Enable()
	}

	if snap.CycleID != v.renderedCycle || len(snap.Questions) != len(v.feedback) {
		v.renderQuestions(snap)
	}
}

// FeedbackChanged implements session.Listener.
func (v *App) FeedbackChanged(index int, fb session.Feedback) {
	if index < 0 || index >= len(v.feedback) {
		config.Logger.WithField("question_index", index).Error("[DESKTOP] no feedback label for question")
		v.status.SetText(fmt.Sprintf("Interne fout: geen feedbackveld voor vraag %d.", index+1))
		return
	}
	label := v.feedback[index]
	label.SetText(fb.Message)
	if fb.IsCorrect {
		label.Importance = widget.SuccessImportance
	} else {
		label.Importance = widget.DangerImportance
	}
	label.Refresh()
}

func (v *App) renderQuestions(snap session.Snapshot) {
	v.renderedCycle = snap.CycleID
	v.quizArea.RemoveAll()
	v.radios = make([]*widget.RadioGroup, len(snap.Questions))
	v.feedback = make([]*widget.Label, len(snap.Questions))

	for i, q := range snap.Questions {
		index := q.Index

		prompt := widget.NewLabelWithStyle(fmt.Sprintf("Vraag %d: %s", index+1, q.Prompt), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		prompt.Wrapping = fyne.TextWrapWord

		fb := widget.NewLabelWithStyle(q.Feedback.Message, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		fb.Wrapping = fyne.TextWrapWord

		radio := widget.NewRadioGroup(q.Options, func(selected string) {
			if selected == "" {
				return
			}
			if _, err := v.session.Answer(index, selected); err != nil {
				config.Logger.WithError(err).Debug("[DESKTOP] answer not scored")
			}
		})

		v.radios[i] = radio
		v.feedback[i] = fb
		v.quizArea.Add(widget.NewCard("", "", container.NewVBox(prompt, widget.NewSeparator(), radio, fb)))
	}

	if len(snap.Questions) > 0 {
		v.heading.Show()
	} else {
		v.heading.Hide()
	}
	v.quizArea.Refresh()
}

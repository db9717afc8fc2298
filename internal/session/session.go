// Package session holds the state of one quiz screen: the generation cycle
// Idle → Submitting → Success | Failed, the current QuizSet and one view
// model per rendered question. Front-ends render from Snapshot and feed
// user actions back through Submit and Answer.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/saulo-duarte/overhoor-lambda/internal/aiquiz"
	"github.com/saulo-duarte/overhoor-lambda/internal/config"
)

type State string

// StateSuccess and StateFailed are resting states: nothing is in flight
// and the next Submit starts a new cycle, same as from StateIdle.
const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// ErrBusy is returned by Submit while a generation is in flight. The new
// trigger is ignored; the running request is not cancelled.
var ErrBusy = errors.New("quiz generation already in progress")

type Generator interface {
	GenerateQuiz(ctx context.Context, summary string) (*aiquiz.GeneratedQuiz, error)
}

// Listener is told about changes after they happen, always through the
// dispatcher when the change comes from a finished generation.
type Listener interface {
	StateChanged(snap Snapshot)
	FeedbackChanged(index int, fb Feedback)
}

type Feedback struct {
	Answered  bool
	Selected  string
	IsCorrect bool
	Message   string
}

type QuestionView struct {
	Index    int
	Prompt   string
	Options  []string
	Feedback Feedback
}

type Snapshot struct {
	State     State
	Status    string
	CycleID   uuid.UUID
	QuizID    uuid.UUID
	Questions []QuestionView
}

func (s Snapshot) Busy() bool { return s.State == StateSubmitting }

type Option func(*Session)

// WithDispatcher sets how completions are moved back onto the UI thread.
// The default runs them on the generating goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(s *Session) { s.dispatch = dispatch }
}

func WithListener(l Listener) Option {
	return func(s *Session) { s.listener = l }
}

// WithCredential tells the session whether an API key is configured, so a
// missing key is reported before the current quiz is cleared.
func WithCredential(present bool) Option {
	return func(s *Session) { s.hasCredential = present }
}

type Session struct {
	gen           Generator
	dispatch      func(func())
	listener      Listener
	hasCredential bool

	mu     sync.Mutex
	state  State
	status string
	cycle  uuid.UUID
	quizID uuid.UUID
	quiz   aiquiz.QuizSet
	views  []*QuestionView

	inflight sync.WaitGroup
}

func New(gen Generator, opts ...Option) *Session {
	s := &Session{
		gen:           gen,
		dispatch:      func(f func()) { f() },
		hasCredential: true,
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Submit(ctx context.Context, summary string) error {
	log := config.WithContext(ctx)

	if strings.TrimSpace(summary) == "" {
		s.setStatus(MsgEmptySummary)
		return aiquiz.ErrEmptySummary
	}
	if !s.hasCredential {
		s.setStatus(MsgMissingCredential)
		return aiquiz.ErrMissingCredential
	}

	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		log.Debug("[SESSION] submit ignored, generation in progress")
		return ErrBusy
	}
	s.state = StateSubmitting
	s.status = ""
	s.cycle = uuid.New()
	s.quizID = uuid.Nil
	s.quiz = nil
	s.views = nil
	cycle := s.cycle
	snap := s.snapshotLocked()
	s.inflight.Add(1)
	s.mu.Unlock()

	log.WithField("cycle_id", cycle.String()).Info("[SESSION] generating quiz")
	s.notifyState(snap)

	go func() {
		quiz, err := s.gen.GenerateQuiz(ctx, summary)
		s.dispatch(func() {
			defer s.inflight.Done()
			s.complete(ctx, cycle, quiz, err)
		})
	}()
	return nil
}

func (s *Session) complete(ctx context.Context, cycle uuid.UUID, quiz *aiquiz.GeneratedQuiz, err error) {
	log := config.WithContext(ctx).WithField("cycle_id", cycle.String())

	s.mu.Lock()
	if cycle != s.cycle {
		s.mu.Unlock()
		log.Warn("[SESSION] dropping result of a superseded cycle")
		return
	}

	if err != nil {
		s.state = StateFailed
		s.status = StatusMessage(err)
		log.WithError(err).Warn("[SESSION] generation failed")
	} else {
		s.state = StateSuccess
		s.quizID = quiz.ID
		s.quiz = quiz.Questions
		s.views = make([]*QuestionView, len(quiz.Questions))
		for i, q := range quiz.Questions {
			s.views[i] = &QuestionView{Index: i, Prompt: q.Prompt, Options: q.Options}
		}
		if len(quiz.Questions) == 0 {
			s.status = MsgNoQuestions
		}
		log.Infof("[SESSION] quiz ready with %d questions", len(quiz.Questions))
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notifyState(snap)
}

// Answer scores selected for the question at index and records the
// feedback on that question's view. An index that does not belong to the
// current quiz is an integrity failure: it is logged, shown in the status
// text and returned.
func (s *Session) Answer(index int, selected string) (aiquiz.AnswerEvaluation, error) {
	s.mu.Lock()
	ev, err := aiquiz.Evaluate(s.quiz, index, selected)
	if err != nil || index >= len(s.views) {
		if err == nil {
			err = aiquiz.ErrQuestionIndex
		}
		s.status = fmt.Sprintf(msgUnknownQuestion, index+1)
		snap := s.snapshotLocked()
		s.mu.Unlock()

		config.Logger.WithError(err).WithField("question_index", index).Error("[SESSION] feedback target not found")
		s.notifyState(snap)
		return aiquiz.AnswerEvaluation{}, err
	}

	view := s.views[index]
	view.Feedback = feedbackFor(ev)
	fb := view.Feedback
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.FeedbackChanged(index, fb)
	}
	return ev, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until every started generation has been applied.
func (s *Session) Wait() {
	s.inflight.Wait()
}

func (s *Session) setStatus(msg string) {
	s.mu.Lock()
	s.status = msg
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notifyState(snap)
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Status:  s.status,
		CycleID: s.cycle,
		QuizID:  s.quizID,
	}
	if len(s.views) > 0 {
		snap.Questions = make([]QuestionView, len(s.views))
		for i, v := range s.views {
			snap.Questions[i] = *v
			snap.Questions[i].Options = append([]string(nil), v.Options...)
		}
	}
	return snap
}

func (s *Session) notifyState(snap Snapshot) {
	if s.listener != nil {
		s.listener.StateChanged(snap)
	}
}

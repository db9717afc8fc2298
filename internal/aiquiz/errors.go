package aiquiz

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation        Kind = "validation"
	KindTransport         Kind = "transport"
	KindMalformedEnvelope Kind = "malformed_envelope"
	KindInvalidJSON       Kind = "invalid_json"
	KindUnknown           Kind = "unknown"
)

// Error is a classified failure of one generation cycle. All kinds are
// terminal for the cycle; none are retried.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind: errors.Is(err, &Error{Kind: KindTransport}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

var (
	ErrEmptySummary      = &Error{Kind: KindValidation, Msg: "summary is empty"}
	ErrMissingCredential = &Error{Kind: KindValidation, Msg: "gemini api key is not configured"}

	// ErrQuestionIndex means a caller lost track of which question a control
	// belongs to.
	ErrQuestionIndex = errors.New("question index out of range")
)

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf classifies err; errors that are not *Error report KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

package service

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies an operation failure. The wire records keep a single
// message string; kinds let Go callers branch without parsing text.
type Kind int

const (
	KindExtraction Kind = iota
	KindNetwork
	KindNotFound
	KindUnsupportedSource
	KindFilesystem
)

// Error pairs a failure kind with the original diagnostic, which is kept
// verbatim as the message callers see.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error) *Error {
	return &Error{
		Kind: kind,
		Err:  err,
	}
}

// KindOf extracts the failure kind from an operation error. Anything that is
// not a service error counts as a generic extraction failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindExtraction
}

// classify maps an extractor failure onto the closed kind set by inspecting
// its diagnostic text. The text itself is preserved untouched.
func classify(err error) *Error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "unsupported url"):
		return newError(KindUnsupportedSource, err)
	case strings.Contains(msg, "video unavailable"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "404"),
		strings.Contains(msg, "410"):
		return newError(KindNotFound, err)
	case strings.Contains(msg, "timed out"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "network"),
		strings.Contains(msg, "temporary failure"),
		strings.Contains(msg, "429"),
		strings.Contains(msg, "5xx"),
		strings.Contains(msg, "503"):
		return newError(KindNetwork, err)
	default:
		return newError(KindExtraction, err)
	}
}

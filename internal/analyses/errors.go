package analyses

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("resume text and job description are required")
)

const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeBackend           = "backend_error"
	ErrorCodeMalformedResponse = "malformed_response"
	ErrorCodeInternal          = "internal_error"
)

// BackendError wraps a failed call to the generative backend. The request is
// over; nothing was parsed.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("ai backend: %v", e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// MalformedResponseError reports a backend response whose top level could not
// be decoded as a JSON object. Raw retains the payload for diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed backend response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ScoreError reports a match-score value that could not be normalized into a
// percentage. Raw retains the offending value for diagnostic display; the
// rest of the result stays usable.
type ScoreError struct {
	Raw    any    `json:"raw"`
	Reason string `json:"reason"`
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("match score %v: %s", e.Raw, e.Reason)
}

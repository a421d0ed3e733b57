// Package common defines shared constants and sentinel errors used across
// NoteKeeper layers. Callers should use errors.Is to match the sentinel
// values and errors.As for *ValidationError.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrInternal        = errors.New("internal error")
	ErrUnauthenticated = errors.New("not authenticated")

	// Auth errors. Malformed, badly signed and expired tokens all map to
	// this single value so callers cannot tell which check failed.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports rejected user input. Message is safe to return
// to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError constructs a ValidationError with the given
// client-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

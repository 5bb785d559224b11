package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEventNotPrivate   = errors.New("event is not private")
	ErrNoInviteesMatched = errors.New("no invitees matched")
)

// ValidationError carries the list of human-readable problems found in a request.
// errors.Is(err, ErrInvalidInput) reports true for it.
type ValidationError struct {
	Details []string
}

// NewValidationError returns a ValidationError with the given details.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

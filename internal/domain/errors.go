package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the services and mapped to HTTP status codes
// in one place by the API layer. All of these are terminal for the
// request; nothing is retried internally.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError is a malformed or business-rule-violating input:
// bad dates, self-rental, unavailable item, unknown category.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// taggedError carries a human-readable message while still matching its
// taxonomy sentinel through errors.Is.
type taggedError struct {
	tag error
	msg string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Unwrap() error { return e.tag }

func Conflictf(format string, args ...any) error {
	return &taggedError{tag: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) error {
	return &taggedError{tag: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError is a (from, to) pair absent from the rental
// transition table.
type InvalidTransitionError struct {
	From RentalStatus
	To   RentalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Adapters wrap them with context; callers test with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrRateLimited   = errors.New("rate limited")
)

var (
	// ErrEditResolved: the decision targets an edit that is no longer
	// PENDING. Another moderator got there first, or a newer submission
	// superseded it.
	ErrEditResolved = fmt.Errorf("already resolved: %w", ErrConflict)

	// ErrStaleEdit: the live field value no longer equals the edit's
	// captured old value, so applying it would clobber someone else's change.
	ErrStaleEdit = fmt.Errorf("stale edit: %w", ErrConflict)
)

// errorCodes is ordered most specific first.
var errorCodes = []struct {
	err  error
	code string
}{
	{ErrStaleEdit, "stale_edit"},
	{ErrEditResolved, "already_resolved"},
	{ErrValidation, "validation"},
	{ErrUnauthorized, "unauthorized"},
	{ErrForbidden, "forbidden"},
	{ErrNotFound, "not_found"},
	{ErrAlreadyExists, "already_exists"},
	{ErrConflict, "conflict"},
	{ErrRateLimited, "rate_limited"},
}

// ErrorCode returns the stable machine-readable code for err, or "" when
// err wraps none of the sentinels. Clients branch on these codes.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// FieldError is one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field problem found in one input, so the
// client can fix them all in a single round trip.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message returns the message recorded for field, if any.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

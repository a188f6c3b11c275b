package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no business exists for a slug.
	ErrNotFound = errors.New("business not found")
	// ErrUnauthorized covers both a wrong token and an unknown slug on the edit path.
	ErrUnauthorized = errors.New("invalid edit token or business not found")
	// ErrTokenRequired is returned when the edit path is hit without a token.
	ErrTokenRequired = errors.New("edit token is required")
	// ErrStaleVersion is returned when a save carries a version older than the stored one.
	ErrStaleVersion = errors.New("stale business version")
	// ErrSlugTaken is returned when an insert races on an existing slug.
	ErrSlugTaken = errors.New("slug already taken")
)

// ValidationError is a user-facing field error shown inline.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors is an ordered list of field errors. It implements error.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// For returns the first message recorded for field, or "".
func (v ValidationErrors) For(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Messages returns every message in order.
func (v ValidationErrors) Messages() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		out = append(out, e.Message)
	}
	return out
}

// AsValidation extracts validation errors from err, if any.
func AsValidation(err error) (ValidationErrors, bool) {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}

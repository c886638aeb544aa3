package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP mapping by the global error handler.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
)

// FieldError is one per-field validation problem surfaced to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type handlers return. The global fiber
// ErrorHandler maps Kind to a status code and shapes the JSON envelope.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status for the error kind. Conflicts map
// to 400, not 409: duplicate slugs and blocked deletes are surfaced as
// business-rule violations.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return 400
	case KindNotFound:
		return 404
	case KindForbidden:
		return 403
	default:
		return 500
	}
}

func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Wrap attaches a cause to an internal error without leaking it to the
// client; the message is what the envelope shows.
func Wrap(message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Message: message, cause: cause}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package apperror

import (
	"errors"
	"fmt"
)

// Kind enumerates the error categories shared by the order packages.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// AppError is a categorised failure. The CLI turns its kind into an exit status
// and the intake service echoes its message back to the mobile client.
type AppError struct {
	kind    Kind
	message string
	details map[string]any
	cause   error
}

// Option configures an AppError.
type Option func(*AppError)

// WithCause wraps the lower-level error that triggered the failure.
func WithCause(err error) Option {
	return func(e *AppError) { e.cause = err }
}

// WithDetail records the offending field or value.
func WithDetail(key string, value any) Option {
	return func(e *AppError) {
		if e.details == nil {
			e.details = make(map[string]any)
		}
		e.details[key] = value
	}
}

func newError(kind Kind, message string, opts []Option) *AppError {
	if message == "" {
		message = string(kind)
	}
	e := &AppError{kind: kind, message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validation reports a payload or argument that broke a constraint.
func Validation(message string, opts ...Option) *AppError {
	return newError(KindValidation, message, opts)
}

// NotFound reports a named lookup with no match.
func NotFound(message string, opts ...Option) *AppError {
	return newError(KindNotFound, message, opts)
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *AppError) Unwrap() error { return e.cause }

// Message is the error text without the wrapped cause, safe to show a client.
func (e *AppError) Message() string { return e.message }

func (e *AppError) Details() map[string]any { return e.details }

// ExitCode maps the kind onto the CLI process status.
func (e *AppError) ExitCode() int {
	if e == nil {
		return 0
	}
	switch e.kind {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	default:
		return 1
	}
}

// From returns err as an AppError, classifying anything foreign as internal.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var e *AppError
	if errors.As(err, &e) {
		return e
	}
	return newError(KindInternal, "internal error", []Option{WithCause(err)})
}

func IsValidation(err error) bool { return is(err, KindValidation) }

func IsNotFound(err error) bool { return is(err, KindNotFound) }

func is(err error, kind Kind) bool {
	var e *AppError
	return errors.As(err, &e) && e.kind == kind
}

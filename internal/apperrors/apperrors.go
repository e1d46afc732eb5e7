// Package apperrors provides coded errors shared by the service and
// handler layers, so callers can tell a bad request from a broken upstream
// without inspecting transport errors.
package apperrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling.
type Code string

const (
	// CodeValidation means the caller supplied invalid input.
	CodeValidation Code = "VALIDATION"
	// CodeUpstreamUnavailable means the recipe source could not be reached or answered badly.
	CodeUpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	// CodeNotFound means the requested record does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeConflict means the record already exists.
	CodeConflict Code = "CONFLICT"
	// CodeInternal is anything else.
	CodeInternal Code = "INTERNAL"
)

// Error is a coded error with an optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code. This lets
// callers match on sentinels such as ErrNotFound regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Message == "" && t.Cause == nil
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation          = &Error{Code: CodeValidation}
	ErrUpstreamUnavailable = &Error{Code: CodeUpstreamUnavailable}
	ErrNotFound            = &Error{Code: CodeNotFound}
	ErrConflict            = &Error{Code: CodeConflict}
)

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error around cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal if there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

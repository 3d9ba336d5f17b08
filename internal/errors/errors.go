// Package errors carries the coded errors returned across the effect engine.
// Callers branch on the code, never on the message.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown            Code = "unknown"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeNotFound           Code = "not_found"
	CodeAlreadyExists      Code = "already_exists"
	CodeFailedPrecondition Code = "failed_precondition"
	// CodeUnavailable marks a snapshot store or tick loop that could not be reached
	CodeUnavailable Code = "unavailable"
	// CodeValidation marks catalog data that failed validation
	CodeValidation Code = "validation"
)

// Error is a coded error. Meta carries ids such as entity_id or effect_type.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a metadata value and returns e
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A wrapped *Error keeps its code and metadata;
// anything else becomes CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	var appErr *Error
	if errors.As(err, &appErr) {
		wrapped.Code = appErr.Code
		wrapped.Meta = maps.Clone(appErr.Meta)
	}
	return wrapped
}

func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// GetCode returns the code of the outermost *Error in the chain
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// Is reports whether err carries code. Nil and foreign errors never match.
func Is(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool           { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return Is(err, CodeAlreadyExists) }
func IsFailedPrecondition(err error) bool { return Is(err, CodeFailedPrecondition) }
func IsValidation(err error) bool         { return Is(err, CodeValidation) }

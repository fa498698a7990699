// Package hlerrors defines structured application errors for the hashlife
// engine's command-line host and supporting packages (config, pattern
// ingestion). The core hashlife package itself never returns these: it
// panics on contract violations and degrades gracefully on out-of-range
// queries.
package hlerrors

import (
	"errors"
	"fmt"
)

// Error codes used across the host and ingestion layers.
const (
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeConfigError  = "CONFIG_ERROR"
	CodePatternError = "PATTERN_ERROR"
	CodeIOError      = "IO_ERROR"
	CodeBoundsError  = "BOUNDS_ERROR"
)

// AppError represents an application error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Common error instances.
var (
	ErrConfigError  = New(CodeConfigError, "configuration error")
	ErrPatternError = New(CodePatternError, "pattern parse error")
	ErrIOError      = New(CodeIOError, "i/o error")
	ErrBoundsError  = New(CodeBoundsError, "coordinate out of range")
)

// IsConfigError reports whether err is (or wraps) a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigError)
}

// IsPatternError reports whether err is (or wraps) a pattern parse error.
func IsPatternError(err error) bool {
	return errors.Is(err, ErrPatternError)
}

// IsBoundsError reports whether err is (or wraps) an out-of-range error.
func IsBoundsError(err error) bool {
	return errors.Is(err, ErrBoundsError)
}

// Code extracts the error code from err, or CodeUnknown if err is not (and
// does not wrap) an *AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// Message extracts the human-readable message from err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

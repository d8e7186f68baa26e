// Package errors provides structured error types for gitsocial.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the renderer, pipeline, and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes fall into the categories the renderer distinguishes:
//   - UNKNOWN_THEME, UNKNOWN_STYLE: configuration errors (see [IsConfiguration])
//   - MISSING_SURFACE: the target surface cannot be drawn on
//   - ASSET_LOAD: an avatar image could not be fetched or decoded
//   - INVALID_*, NOT_FOUND, NETWORK_*: input and data-source failures
//
// A missing repository field is never an error; generators substitute
// fallback text instead.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownStyle, "unknown style %q", id)
//	if errors.IsConfiguration(err) {
//	    // render the remaining styles, report this one
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeUnknownTheme Code = "UNKNOWN_THEME"
	ErrCodeUnknownStyle Code = "UNKNOWN_STYLE"

	// Rendering errors
	ErrCodeMissingSurface Code = "MISSING_SURFACE"
	ErrCodeAssetLoad      Code = "ASSET_LOAD"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidRepo   Code = "INVALID_REPO"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Network errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error carries a Code, a message for the user, and the error it wraps.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// IsConfiguration reports whether err names an unknown theme or style.
func IsConfiguration(err error) bool {
	return Is(err, ErrCodeUnknownTheme) || Is(err, ErrCodeUnknownStyle)
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix and cause from coded errors. Other
// errors are returned verbatim.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Package errors provides structured error types for linkplot.
//
// Every failure the tool can hit while reading a map or an index, or while
// laying out the diagram, carries one of the codes below. All of them are
// fatal: callers stop before any output file is written.
//
// # Error Codes
//
//   - FORMAT_ERROR: a malformed line in the map or index file
//   - MISSING_LENGTH: a resolved sequence name absent from the index
//   - EMPTY_GROUP: a group with no markers on its own sequence, or an empty map
//   - INVALID_*: bad command-line or config input
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingLength, "no length for %s", name)
//	if errors.Is(err, errors.ErrCodeMissingLength) {
//	    // Handle missing index entry
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFormat, parseErr, "line %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input file errors
	ErrCodeFormat        Code = "FORMAT_ERROR"
	ErrCodeMissingLength Code = "MISSING_LENGTH"
	ErrCodeEmptyGroup    Code = "EMPTY_GROUP"

	// Invocation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// Line reports a malformed input line. The message names the source, the
// 1-based line number and the offending text.
func Line(source string, n int, text string, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeFormat,
		Message: fmt.Sprintf("%s:%d: %s: %q", source, n, fmt.Sprintf(format, args...), text),
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

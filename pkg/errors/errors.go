// Package errors provides structured error types shared by the math
// board's CLI and persistence layers.
//
// Error codes are machine-readable and hierarchical:
//   - INVALID_*: input or snapshot validation failures
//   - NOT_FOUND_*: missing resources
//   - STORE_*: snapshot store failures
//   - INTERNAL_*: unexpected internal errors
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInvalidSnapshot, "missing objects array")
//	if errors.Is(err, errors.ErrCodeInvalidSnapshot) {
//	    // handle malformed snapshot
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStore, readErr, "read snapshot %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input and snapshot validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidSnapshot   Code = "INVALID_SNAPSHOT"
	ErrCodeInvalidRecord     Code = "INVALID_RECORD"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidConstraint Code = "INVALID_CONSTRAINT"

	// Resource not found errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeSnapshotNotFound Code = "SNAPSHOT_NOT_FOUND"

	// Storage errors
	ErrCodeStore Code = "STORE_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether err carries the given error code anywhere in its
// unwrap chain.
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

// Package errors provides coded errors for fractal generation and rendering.
//
// Every failure the core can produce carries a Code so callers can branch on
// the kind of failure without matching message text:
//
//	preset, err := transforms.ParsePreset(name)
//	if errors.Is(err, errors.ErrCodeUnknownPreset) {
//	    // list the valid presets
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeUnknownPreset       Code = "UNKNOWN_PRESET"
	ErrCodeInvalidPointCount   Code = "INVALID_POINT_COUNT"
	ErrCodeInvalidTransformSet Code = "INVALID_TRANSFORM_SET"
	ErrCodeInvalidCanvas       Code = "INVALID_CANVAS"
	ErrCodeInvalidConfig       Code = "INVALID_CONFIG"

	// Rendering errors
	ErrCodeDegenerateFractal Code = "DEGENERATE_FRACTAL"
	ErrCodePointOutOfCanvas  Code = "POINT_OUT_OF_CANVAS"

	// Output errors
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeIO                Code = "IO"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

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

// Is reports whether the outermost *Error in err's chain has the given code.
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

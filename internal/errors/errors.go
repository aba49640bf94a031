package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeLoad              ErrorType = "load"
	ErrorTypeInvalidArguments  ErrorType = "invalid_arguments"
	ErrorTypeInvalidDimensions ErrorType = "invalid_dimensions"
	ErrorTypeDisplay           ErrorType = "display"
	ErrorTypeConfig            ErrorType = "config"
	ErrorTypeInternal          ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewLoadError reports a source that could not be read or decoded
func NewLoadError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeLoad,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidArgumentsError reports a command line that matches no accepted form.
// details carries the usage text.
func NewInvalidArgumentsError(message, details string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidArguments,
		Message: message,
		Details: details,
	}
}

// NewInvalidDimensionsError reports a zero or negative width or height
func NewInvalidDimensionsError(width, height int) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidDimensions,
		Message: "width and height must be positive",
		Details: fmt.Sprintf("%dx%d", width, height),
	}
}

// NewDisplayError creates a new display error
func NewDisplayError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDisplay,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error, or any error it wraps, is an AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	return TypeOf(err) == errorType
}

// TypeOf returns the type of the outermost AppError in the chain, or
// ErrorTypeInternal when there is none. A nil error has no type.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Menu engine errors
	ErrBufferOverflow ErrorCode = "BUFFER_OVERFLOW"
	ErrUnknownCommand ErrorCode = "UNKNOWN_COMMAND"
	ErrFormat         ErrorCode = "FORMAT"
	ErrIO             ErrorCode = "IO"
	ErrCommandFailed  ErrorCode = "COMMAND_FAILED"

	// Registry errors
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrRegistryFull   ErrorCode = "REGISTRY_FULL"
	ErrRegistryFrozen ErrorCode = "REGISTRY_FROZEN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// MenuError represents a structured error with code and details
type MenuError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MenuError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MenuError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MenuError) Is(target error) bool {
	var targetErr *MenuError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MenuError with the given code and message
func New(code ErrorCode, message string) *MenuError {
	return &MenuError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MenuError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MenuError {
	return &MenuError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MenuError
func Wrap(err error, code ErrorCode, message string) *MenuError {
	if err == nil {
		return nil
	}
	return &MenuError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MenuError {
	if err == nil {
		return nil
	}
	return &MenuError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MenuError) WithDetail(key string, value interface{}) *MenuError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MenuError) WithDetails(details map[string]interface{}) *MenuError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var menuErr *MenuError
	if errors.As(err, &menuErr) {
		return menuErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MenuError
func GetErrorCode(err error) ErrorCode {
	var menuErr *MenuError
	if errors.As(err, &menuErr) {
		return menuErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MenuError
func GetErrorDetails(err error) map[string]interface{} {
	var menuErr *MenuError
	if errors.As(err, &menuErr) {
		return menuErr.Details
	}
	return nil
}

// IsTerminal reports whether err ends the read loop. Only device failures do;
// every other code is reported to the user and the loop continues.
func IsTerminal(err error) bool {
	return IsErrorCode(err, ErrIO)
}

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

	// Setup errors, all of them abort the run before any target is processed
	ErrDependency     ErrorCode = "DEPENDENCY"
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrInvalidPath    ErrorCode = "INVALID_PATH"
	ErrFileAccess     ErrorCode = "FILE_ACCESS"
	ErrLocked         ErrorCode = "LOCKED"

	// Per-target errors, reported but never fatal
	ErrMissingSource ErrorCode = "MISSING_SOURCE"
	ErrStowExecute   ErrorCode = "STOW_EXECUTE"
)

// StowdError represents a structured error with code and details
type StowdError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StowdError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StowdError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StowdError) Is(target error) bool {
	var targetErr *StowdError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StowdError with the given code and message
func New(code ErrorCode, message string) *StowdError {
	return &StowdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StowdError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StowdError {
	return &StowdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StowdError
func Wrap(err error, code ErrorCode, message string) *StowdError {
	if err == nil {
		return nil
	}
	return &StowdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StowdError {
	if err == nil {
		return nil
	}
	return &StowdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StowdError) WithDetail(key string, value interface{}) *StowdError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stowdErr *StowdError
	if errors.As(err, &stowdErr) {
		return stowdErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StowdError
func GetErrorCode(err error) ErrorCode {
	var stowdErr *StowdError
	if errors.As(err, &stowdErr) {
		return stowdErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StowdError
func GetErrorDetails(err error) map[string]interface{} {
	var stowdErr *StowdError
	if errors.As(err, &stowdErr) {
		return stowdErr.Details
	}
	return nil
}

// IsSetupFailure reports whether err is one of the codes that abort a run
// before any target is processed.
func IsSetupFailure(err error) bool {
	switch GetErrorCode(err) {
	case ErrDependency, ErrConfigNotFound, ErrConfigParse, ErrConfigInvalid,
		ErrInvalidPath, ErrFileAccess, ErrLocked:
		return true
	}
	return false
}

// GetErrorMessage returns the message of a StowdError without its code
// prefix, or err.Error() for other errors
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var stowdErr *StowdError
	if errors.As(err, &stowdErr) {
		return stowdErr.Message
	}
	return err.Error()
}

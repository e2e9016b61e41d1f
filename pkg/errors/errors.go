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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
	ErrFileCreate        ErrorCode = "FILE_CREATE"
	ErrDirCreate         ErrorCode = "DIR_CREATE"
	ErrNotSymlink        ErrorCode = "NOT_SYMLINK"
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"

	// Restore errors
	ErrRestore ErrorCode = "RESTORE"
	ErrAborted ErrorCode = "ABORTED"
)

// FutilsError represents a structured error with code and details
type FutilsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FutilsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FutilsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FutilsError) Is(target error) bool {
	var targetErr *FutilsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FutilsError with the given code and message
func New(code ErrorCode, message string) *FutilsError {
	return &FutilsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FutilsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FutilsError {
	return &FutilsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FutilsError
func Wrap(err error, code ErrorCode, message string) *FutilsError {
	if err == nil {
		return nil
	}
	return &FutilsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FutilsError {
	if err == nil {
		return nil
	}
	return &FutilsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FutilsError) WithDetail(key string, value interface{}) *FutilsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FutilsError) WithDetails(details map[string]interface{}) *FutilsError {
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
	var futilsErr *FutilsError
	if errors.As(err, &futilsErr) {
		return futilsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FutilsError
func GetErrorCode(err error) ErrorCode {
	var futilsErr *FutilsError
	if errors.As(err, &futilsErr) {
		return futilsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FutilsError
func GetErrorDetails(err error) map[string]interface{} {
	var futilsErr *FutilsError
	if errors.As(err, &futilsErr) {
		return futilsErr.Details
	}
	return nil
}

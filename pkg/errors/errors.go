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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Confirmation errors
	ErrAborted   ErrorCode = "ABORTED"
	ErrInputRead ErrorCode = "INPUT_READ"

	// Target list errors
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrFileRemove  ErrorCode = "FILE_REMOVE"
	ErrIsDirectory ErrorCode = "IS_DIRECTORY"
)

// ScrubError represents a structured error with code and details
type ScrubError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScrubError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScrubError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScrubError) Is(target error) bool {
	var targetErr *ScrubError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScrubError with the given code and message
func New(code ErrorCode, message string) *ScrubError {
	return &ScrubError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScrubError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScrubError {
	return &ScrubError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScrubError
func Wrap(err error, code ErrorCode, message string) *ScrubError {
	if err == nil {
		return nil
	}
	return &ScrubError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScrubError) WithDetail(key string, value interface{}) *ScrubError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scrubErr *ScrubError
	if errors.As(err, &scrubErr) {
		return scrubErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScrubError
func GetErrorCode(err error) ErrorCode {
	var scrubErr *ScrubError
	if errors.As(err, &scrubErr) {
		return scrubErr.Code
	}
	return ErrUnknown
}

// Cause returns the innermost error that is not a ScrubError. Per-file
// reports print this so the user sees the operating system's reason.
func Cause(err error) error {
	for {
		scrubErr, ok := err.(*ScrubError)
		if !ok || scrubErr.Wrapped == nil {
			return err
		}
		err = scrubErr.Wrapped
	}
}

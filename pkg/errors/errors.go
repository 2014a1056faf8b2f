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

	// Request errors
	ErrInvalidPath     ErrorCode = "INVALID_PATH"
	ErrUnknownArgument ErrorCode = "UNKNOWN_ARGUMENT"
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrShellType       ErrorCode = "SHELL_TYPE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Platform errors
	ErrPlatformDetect ErrorCode = "PLATFORM_DETECT"

	// Output errors
	ErrOutputTarget ErrorCode = "OUTPUT_TARGET"
	ErrLoggingSetup ErrorCode = "LOGGING_SETUP"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// SsmuseError represents a structured error with code and details
type SsmuseError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SsmuseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SsmuseError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SsmuseError) Is(target error) bool {
	var targetErr *SsmuseError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SsmuseError with the given code and message
func New(code ErrorCode, message string) *SsmuseError {
	return &SsmuseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SsmuseError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SsmuseError {
	return &SsmuseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SsmuseError
func Wrap(err error, code ErrorCode, message string) *SsmuseError {
	if err == nil {
		return nil
	}
	return &SsmuseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SsmuseError {
	if err == nil {
		return nil
	}
	return &SsmuseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SsmuseError) WithDetail(key string, value interface{}) *SsmuseError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ssmErr *SsmuseError
	if errors.As(err, &ssmErr) {
		return ssmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SsmuseError
func GetErrorCode(err error) ErrorCode {
	var ssmErr *SsmuseError
	if errors.As(err, &ssmErr) {
		return ssmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SsmuseError
func GetErrorDetails(err error) map[string]interface{} {
	var ssmErr *SsmuseError
	if errors.As(err, &ssmErr) {
		return ssmErr.Details
	}
	return nil
}

// Diagnostic renders err the way it is reported to the user on stderr.
// Coded errors print their message without the code prefix; wrapped causes
// are appended.
func Diagnostic(err error) string {
	var ssmErr *SsmuseError
	if !errors.As(err, &ssmErr) {
		return err.Error()
	}
	if ssmErr.Wrapped != nil {
		return fmt.Sprintf("%s (%v)", ssmErr.Message, ssmErr.Wrapped)
	}
	return ssmErr.Message
}

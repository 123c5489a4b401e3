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

	// Filelist errors. Both are fatal for the whole run.
	ErrFilelistNotFound ErrorCode = "FILELIST_NOT_FOUND"
	ErrSourceNotFound   ErrorCode = "SOURCE_NOT_FOUND"

	// Placement errors. Reported per entry, the run continues.
	ErrLinkNameExhausted ErrorCode = "LINK_NAME_EXHAUSTED"
	ErrSymlinkCreate     ErrorCode = "SYMLINK_CREATE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// LnlstError represents a structured error with code and details
type LnlstError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LnlstError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LnlstError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LnlstError) Is(target error) bool {
	var targetErr *LnlstError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LnlstError with the given code and message
func New(code ErrorCode, message string) *LnlstError {
	return &LnlstError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LnlstError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LnlstError {
	return &LnlstError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LnlstError
func Wrap(err error, code ErrorCode, message string) *LnlstError {
	if err == nil {
		return nil
	}
	return &LnlstError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LnlstError {
	if err == nil {
		return nil
	}
	return &LnlstError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LnlstError) WithDetail(key string, value interface{}) *LnlstError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LnlstError) WithDetails(details map[string]interface{}) *LnlstError {
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
	var lnlstErr *LnlstError
	if errors.As(err, &lnlstErr) {
		return lnlstErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LnlstError
func GetErrorCode(err error) ErrorCode {
	var lnlstErr *LnlstError
	if errors.As(err, &lnlstErr) {
		return lnlstErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LnlstError
func GetErrorDetails(err error) map[string]interface{} {
	var lnlstErr *LnlstError
	if errors.As(err, &lnlstErr) {
		return lnlstErr.Details
	}
	return nil
}

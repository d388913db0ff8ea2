package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is an application-specific error type
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error code constants
const (
	CodeInternal               = "INTERNAL_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeInvalidArg             = "INVALID_ARGUMENT"
	CodeUpstream               = "UPSTREAM_ERROR"          // network, non-2xx or malformed payload from an API call
	CodeTimeout                = "TIMEOUT"                 // per-video transcript budget exceeded
	CodeTranslationUnavailable = "TRANSLATION_UNAVAILABLE" // translate step rejected the target language
	CodeDisabled               = "TRANSCRIPTS_DISABLED"    // the transcript feature is off for the video
)

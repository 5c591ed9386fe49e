package errors

import (
	"errors"
	"fmt"
)

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeConfigMissing ErrCode = "CONFIG_MISSING"
	ErrCodeUnauthorized  ErrCode = "UNAUTHORIZED"
	ErrCodeNotFound      ErrCode = "NOT_FOUND"
	ErrCodeUpstream      ErrCode = "UPSTREAM_ERROR"
	ErrCodeInternal      ErrCode = "INTERNAL_ERROR"
	ErrCodeBadRequest    ErrCode = "BAD_REQUEST"
)

// AppError represents an application error
type AppError struct {
	Code    ErrCode
	Message string
	// Details is shown to the user next to Message.
	Details string
	// Resource names the upstream object involved, e.g. a database id.
	Resource string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigMissingError creates an error for absent credentials
func NewConfigMissingError(message, details string) *AppError {
	return &AppError{
		Code:    ErrCodeConfigMissing,
		Message: message,
		Details: details,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message, details string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: details,
		Err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message, resource string, err error) *AppError {
	return &AppError{
		Code:     ErrCodeNotFound,
		Message:  message,
		Resource: resource,
		Err:      err,
	}
}

// NewUpstreamError wraps any other failure of the upstream source
func NewUpstreamError(message string, err error) *AppError {
	details := "Unknown error"
	if err != nil && err.Error() != "" {
		details = err.Error()
	}
	return &AppError{
		Code:    ErrCodeUpstream,
		Message: message,
		Details: details,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
	}
}

// As returns the AppError in err's chain, if any
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code ErrCode) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrCodeUnauthorized)
}

// IsConfigMissing checks if the error reports absent credentials
func IsConfigMissing(err error) bool {
	return hasCode(err, ErrCodeConfigMissing)
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Lookup errors
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// Uniqueness errors
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeAlreadyApproved ErrorCode = "ALREADY_APPROVED"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"

	// Infrastructure errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodePayment     ErrorCode = "PAYMENT_FAILED"
	ErrCodeUpstream    ErrorCode = "UPSTREAM_ERROR"
	ErrCodeInternal    ErrorCode = "INTERNAL"
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
)

// AppError is the error type returned by services and rendered by response.HandleError
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error code onto the HTTP status the API answers with.
func (e *AppError) Status() int {
	switch e.Code {
	case ErrCodeUnauthenticated, ErrCodeInvalidToken, ErrCodeMissingToken:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeInvalidRole:
		return http.StatusForbidden
	case ErrCodeNotFound, ErrCodeUserNotFound:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeUserExists, ErrCodeAlreadyApproved:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat, ErrCodeInvalidAmount, ErrCodeInvalidEmail:
		return http.StatusBadRequest
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, ErrInvalidInput)
}

func Forbidden(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, nil)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeInternal, message, err)
}

// IsAppError reports whether err wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUnauthorized      = errors.New("unauthorized")

	ErrPaymentNotFound        = errors.New("payment request not found")
	ErrPaymentAlreadyApproved = errors.New("payment request already approved")
	ErrPaymentRejected        = errors.New("payment request was rejected")
	ErrPaymentFailed          = errors.New("payment failed")
	ErrApprovalInProgress     = errors.New("approval already in progress")

	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode tags an error with its taxonomy class
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Conflict errors
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeRateNotConfigured ErrorCode = "RATE_NOT_CONFIGURED"
	ErrCodeAlreadyReviewed   ErrorCode = "ALREADY_REVIEWED"
	ErrCodeNotEligible       ErrorCode = "NOT_ELIGIBLE"
	ErrCodeNotBookable       ErrorCode = "NOT_BOOKABLE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Everything else
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError carries a taxonomy code alongside the human-readable message
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

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingExpired    = errors.New("booking expired")
	ErrBookingTerminal   = errors.New("booking is in a terminal status")
	ErrAccommodationBusy = errors.New("accommodation already has an active booking")

	// Review errors
	ErrAlreadyReviewed = errors.New("booking already reviewed")
	ErrNotEligible     = errors.New("booking not eligible for review")

	// Pricing errors
	ErrRateNotConfigured = errors.New("no rate configured for season and duration")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

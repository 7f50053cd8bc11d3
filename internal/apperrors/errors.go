package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// It is the same error as ErrInvalidInput; both names are used across the codebase.
var ErrValidation = errors.New("validation error")

// ErrInvalidInput is an alias of ErrValidation for malformed dates, times or payloads.
var ErrInvalidInput = ErrValidation

// ErrConflict indicates that the desk (or the user) already holds a live booking for the date.
var ErrConflict = errors.New("resource conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPolicyViolation indicates a booking window, lead-time or slot rule was broken.
var ErrPolicyViolation = errors.New("policy violation")

// ErrForbidden indicates the caller's role does not allow the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState indicates a booking transition not allowed from its current status.
var ErrInvalidState = errors.New("invalid state transition")

// ErrNotAuthorized indicates that check-in evidence did not match the office network.
var ErrNotAuthorized = errors.New("not authorized")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries a human readable message alongside one of the sentinel errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps an underlying (usually infrastructure) error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewPolicyViolationError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Err: ErrPolicyViolation}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrInvalidState}
}

func NewNotAuthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrNotAuthorized}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// Message returns the human readable part of err, falling back to err.Error().
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

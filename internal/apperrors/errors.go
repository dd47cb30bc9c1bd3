package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrBusinessRule indicates that a request was rejected by a bookkeeping rule
// (insufficient balance, overpayment, deleting a referenced category, ...).
var ErrBusinessRule = errors.New("business rule violation")

// AppError carries an HTTP-ish status code alongside a message and the
// underlying cause, so repositories can classify failures without importing
// net/http.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewBusinessRuleError creates an AppError that matches ErrBusinessRule via errors.Is.
func NewBusinessRuleError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrBusinessRule}
}

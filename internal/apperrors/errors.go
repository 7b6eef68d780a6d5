package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict")

// ErrInternal is a generic internal failure.
var ErrInternal = errors.New("internal error")

// ErrReferentialIntegrity indicates a delete was refused because other records still reference the resource.
var ErrReferentialIntegrity = errors.New("resource is still referenced")

// ErrPersistence indicates the storage layer failed.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is/As work through AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel implied by the status code.
func (e *AppError) Is(target error) bool {
	switch e.Code {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusBadRequest:
		return target == ErrValidation
	case http.StatusConflict:
		return target == ErrConflict
	case http.StatusInternalServerError:
		return target == ErrPersistence
	}
	return false
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewPersistenceError builds a 500 AppError for storage failures.
func NewPersistenceError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

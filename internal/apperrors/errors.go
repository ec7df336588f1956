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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation cannot proceed in the resource's current
// state, e.g. a workflow transition requested while another is in flight.
var ErrConflict = errors.New("conflicting operation in progress")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP status code alongside a message, for handlers that
// respond with the error body directly.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewBadRequestError creates an AppError with a 400 status code.
func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

// NewUnauthorizedError creates an AppError with a 401 status code.
func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: msg}
}

// NewInternalServerError creates an AppError with a 500 status code.
func NewInternalServerError(msg string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg}
}

// NewGatewayTimeoutError creates an AppError with a 504 status code.
func NewGatewayTimeoutError(msg string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: msg}
}

package apperror

import "net/http"

// AppError is an error that maps directly to an HTTP status and a
// client-visible detail string. Anything else surfaces as a generic 500.
type AppError struct {
	Status int
	Detail string
}

func (e *AppError) Error() string {
	return e.Detail
}

func New(status int, detail string) *AppError {
	return &AppError{Status: status, Detail: detail}
}

func BadRequest(detail string) *AppError {
	return New(http.StatusBadRequest, detail)
}

func Unauthorized(detail string) *AppError {
	return New(http.StatusUnauthorized, detail)
}

func NotFound(detail string) *AppError {
	return New(http.StatusNotFound, detail)
}

// Shared domain errors. Login failure is deliberately identical for an
// unknown email and a wrong password.
var (
	ErrEmailRegistered    = BadRequest("Email already registered")
	ErrInvalidCredentials = BadRequest("Invalid credentials")
	ErrInvalidToken       = Unauthorized("Invalid or expired token")
	ErrUserNotFound       = Unauthorized("User not found")
	ErrNoteNotFound       = NotFound("Note not found")
)

package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// StoreErrorMessage describes snapshot storage failures.
	StoreErrorMessage = "snapshot store operation failed"
)

var (
	// ErrAuth marks a missing or mismatched ingestion credential.
	ErrAuth = errors.New("invalid api key")
	// ErrBadRequest marks a malformed ingestion payload.
	ErrBadRequest = errors.New("bad request")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches the underlying error.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Auth builds the 403 rejection returned before any body parsing happens.
func Auth(message string) *AppError {
	return New(ErrAuth, http.StatusForbidden, message)
}

// BadRequest builds a 400 rejection for an unusable payload. cause may be nil.
func BadRequest(message string, cause error) *AppError {
	err := ErrBadRequest
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrBadRequest, cause)
	}
	return New(err, http.StatusBadRequest, message)
}

// WrapStore wraps a storage error with a consistent status code and message.
func WrapStore(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, StoreErrorMessage)
}

// StatusOf maps err to an HTTP status, defaulting to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message carried by err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return SystemErrorMessage
}

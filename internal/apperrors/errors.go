package apperrors

import "errors"

// Sentinel errors for the request boundary. Repositories and services
// wrap these with context; handlers map them to HTTP status codes with
// errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusCode returns the HTTP status for err, defaulting to 500 for
// anything outside the taxonomy (storage and network failures).
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	case errors.Is(err, ErrValidation):
		return 400
	case errors.Is(err, ErrUnauthorized):
		return 401
	default:
		return 500
	}
}

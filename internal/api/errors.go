package api

import (
	"errors"
	"net/http"

	"github.com/mjachowicz/taskpad-api/internal/domain"
	"github.com/mjachowicz/taskpad-api/internal/store"
)

// Client-facing error messages. Everything else stays in the logs.
const (
	msgValidationFailed = "Validation failed"
	msgDuplicateName    = "A task with this name already exists"
	msgInvalidBody      = "Request body must be valid JSON"
	msgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var fieldErrs domain.FieldErrors

	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrDuplicateTaskName):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

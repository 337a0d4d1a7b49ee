package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// UnauthorizedMessage is the body text of every 401 response.
const UnauthorizedMessage = "You have to provide a valid API key as the first segment of the URL. " +
	"Request a new one at GET /API_KEY."

// ErrorResponse defines the standard error response structure.
// ValidationErrors is present only for field-validation failures.
type ErrorResponse struct {
	ErrorMessage     string            `json:"errorMessage"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithValidationErrors(w, r, status, message, nil)
}

// RespondWithValidationErrors writes a JSON error response carrying the
// per-field validation messages alongside the top-level message.
func RespondWithValidationErrors(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	fieldErrors map[string]string,
) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		ErrorMessage:     message,
		ValidationErrors: fieldErrors,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the
// underlying error. Useful when the full error belongs in the logs but only
// a sanitized message may reach the client.
//
// 5xx responses are logged at ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{ErrorMessage: userMessage})
}

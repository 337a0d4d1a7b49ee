// Package middleware provides the HTTP middleware applied around the API
// handlers: API key resolution, trace IDs, and the artificial request delay.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mjachowicz/taskpad-api/internal/api/shared"
	"github.com/mjachowicz/taskpad-api/internal/service"
	"github.com/mjachowicz/taskpad-api/internal/store"
)

// KeyAuthMiddleware gates the per-key routes: it resolves the {apiKey} path
// segment against the session registry and rejects unknown or evicted keys.
type KeyAuthMiddleware struct {
	taskService service.TaskService
}

// NewKeyAuthMiddleware creates a new KeyAuthMiddleware with the given dependencies.
func NewKeyAuthMiddleware(taskService service.TaskService) *KeyAuthMiddleware {
	return &KeyAuthMiddleware{
		taskService: taskService,
	}
}

// Resolve validates the API key from the URL path and adds it to the request
// context for authorized requests.
func (m *KeyAuthMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := chi.URLParam(r, "apiKey")
		if apiKey == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.UnauthorizedMessage)
			return
		}

		if err := m.taskService.ResolveKey(r.Context(), apiKey); err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.UnauthorizedMessage)
				return
			}
			slog.Error("failed to resolve API key", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		// Add the resolved key to the context for the handlers.
		ctx := shared.SetAPIKey(r.Context(), apiKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

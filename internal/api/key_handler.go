package api

import (
	"log/slog"
	"net/http"

	"github.com/mjachowicz/taskpad-api/internal/api/shared"
	"github.com/mjachowicz/taskpad-api/internal/platform/logger"
	"github.com/mjachowicz/taskpad-api/internal/service"
)

// KeyHandler handles API key issuance requests.
type KeyHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewKeyHandler creates a new KeyHandler.
func NewKeyHandler(taskService service.TaskService, log *slog.Logger) *KeyHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for KeyHandler")
	}

	return &KeyHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "key_handler")),
	}
}

// IssueKey handles GET /API_KEY requests.
// It mints a new API key with a seeded task list and returns the key as a
// plain string.
func (h *KeyHandler) IssueKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	key, err := h.taskService.IssueKey(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to issue API key", err)
		return
	}

	log.Debug("issued API key")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(key)); err != nil {
		log.Error("failed to write API key response", slog.String("error", err.Error()))
	}
}

// Root handles GET / requests by redirecting to the key issuance endpoint.
func (h *KeyHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/API_KEY", http.StatusTemporaryRedirect)
}

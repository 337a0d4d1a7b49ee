package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mjachowicz/taskpad-api/internal/api/shared"
	"github.com/mjachowicz/taskpad-api/internal/domain"
	"github.com/mjachowicz/taskpad-api/internal/platform/logger"
	"github.com/mjachowicz/taskpad-api/internal/service"
	"github.com/mjachowicz/taskpad-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. It expects the key-auth
// middleware to have resolved the API key into the request context.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /{apiKey}/tasks requests.
// It returns the session's full task list in insertion order.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		log.Warn("API key not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.UnauthorizedMessage)
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), apiKey)
	if err != nil {
		h.respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /{apiKey}/tasks requests.
// On success the created task is returned with 201.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		log.Warn("API key not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.UnauthorizedMessage)
		return
	}

	fields, err := shared.DecodeFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), apiKey, fields)
	if err != nil {
		h.respondWithMappedError(w, r, err)
		return
	}

	log.Debug("created task", slog.String("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PATCH /{apiKey}/tasks/{id} requests.
// Only the fields present in the body are merged into the task.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		log.Warn("API key not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.UnauthorizedMessage)
		return
	}

	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	fields, err := shared.DecodeFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), apiKey, taskID, fields)
	if err != nil {
		h.respondWithMappedError(w, r, err)
		return
	}

	log.Debug("updated task", slog.String("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /{apiKey}/tasks/{id} requests.
// A successful delete returns 204 with an empty body.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	apiKey, ok := shared.GetAPIKey(r.Context())
	if !ok {
		log.Warn("API key not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.UnauthorizedMessage)
		return
	}

	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), apiKey, taskID); err != nil {
		h.respondWithMappedError(w, r, err)
		return
	}

	log.Debug("deleted task", slog.String("task_id", taskID))
	w.WriteHeader(http.StatusNoContent)
}

// respondWithMappedError translates service and store errors into the
// response table: field errors carry the validationErrors map, conflicts get
// their own message, not-found responses have an empty body.
func (h *TaskHandler) respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		shared.RespondWithValidationErrors(w, r, status, msgValidationFailed, fieldErrs)

	case errors.Is(err, store.ErrDuplicateTaskName):
		shared.RespondWithValidationErrors(w, r, status,
			msgDuplicateName, map[string]string{"name": msgDuplicateName})

	case status == http.StatusUnauthorized:
		shared.RespondWithError(w, r, status, shared.UnauthorizedMessage)

	case status == http.StatusNotFound:
		w.WriteHeader(status)

	default:
		shared.RespondWithErrorAndLog(w, r, status, msgUnexpected, err)
	}
}

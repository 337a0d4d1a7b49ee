package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mjachowicz/taskpad-api/internal/api"
	apiMiddleware "github.com/mjachowicz/taskpad-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.DelayMiddleware(
		time.Duration(app.config.Server.RequestDelayMs) * time.Millisecond,
	))

	// Create API handlers using the application's services
	keyHandler := api.NewKeyHandler(app.taskService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	keyAuth := apiMiddleware.NewKeyAuthMiddleware(app.taskService)

	// Key issuance (public)
	r.Get("/", keyHandler.Root)
	r.Get("/API_KEY", keyHandler.IssueKey)

	// Per-key task routes, gated by key resolution
	r.Route("/{apiKey}", func(r chi.Router) {
		r.Use(keyAuth.Resolve)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks", taskHandler.ListTasks)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

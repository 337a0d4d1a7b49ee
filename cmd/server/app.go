package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mjachowicz/taskpad-api/internal/config"
	"github.com/mjachowicz/taskpad-api/internal/platform/memstore"
	"github.com/mjachowicz/taskpad-api/internal/service"
	"github.com/mjachowicz/taskpad-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	sessionStore store.SessionStore

	// Service interfaces
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration and logger
// that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.sessionStore = memstore.New(cfg.Store, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.sessionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// All state is in-memory, so there is nothing to flush; sessions are
// discarded with the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}

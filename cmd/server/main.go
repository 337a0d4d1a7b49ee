// Package main implements the entry point for the taskpad API server,
// a key-scoped in-memory task list service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mjachowicz/taskpad-api/internal/config"
	"github.com/mjachowicz/taskpad-api/internal/platform/logger"
)

// main initializes configuration and logging, wires the application
// dependencies, and runs the HTTP server until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the initialized application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"request_delay_ms", cfg.Server.RequestDelayMs,
		"max_sessions", cfg.Store.MaxSessions,
		"max_tasks_per_session", cfg.Store.MaxTasksPerSession)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}

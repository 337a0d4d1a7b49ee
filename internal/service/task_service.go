// Package service contains the application services that sit between the
// HTTP handlers and the stores, applying field validation before delegating
// to storage.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mjachowicz/taskpad-api/internal/domain"
	"github.com/mjachowicz/taskpad-api/internal/store"
)

// TaskService exposes the task-management operations. Handlers depend on
// this interface so tests can substitute a mock.
type TaskService interface {
	// IssueKey mints and registers a new API key with a seeded task list.
	IssueKey(ctx context.Context) (string, error)

	// ResolveKey reports whether the key identifies a live session.
	ResolveKey(ctx context.Context, apiKey string) error

	// ListTasks returns the session's task list in insertion order.
	ListTasks(ctx context.Context, apiKey string) ([]domain.Task, error)

	// CreateTask validates the decoded request fields in required mode and
	// appends the task. Returns domain.FieldErrors on invalid input,
	// store.ErrDuplicateTaskName on a normalized-name conflict.
	CreateTask(ctx context.Context, apiKey string, fields map[string]any) (domain.Task, error)

	// UpdateTask validates the decoded request fields in optional mode and
	// merges only the provided fields into the task.
	UpdateTask(ctx context.Context, apiKey, taskID string, fields map[string]any) (domain.Task, error)

	// DeleteTask removes the task with the given ID.
	DeleteTask(ctx context.Context, apiKey, taskID string) error
}

// taskService is the default TaskService implementation backed by a
// SessionStore.
type taskService struct {
	store  store.SessionStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(sessionStore store.SessionStore, logger *slog.Logger) (TaskService, error) {
	if sessionStore == nil {
		return nil, errors.New("session store cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &taskService{
		store:  sessionStore,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskService) IssueKey(ctx context.Context) (string, error) {
	key, err := s.store.IssueKey(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to issue API key: %w", err)
	}

	s.logger.Debug("issued API key")
	return key, nil
}

func (s *taskService) ResolveKey(ctx context.Context, apiKey string) error {
	return s.store.ResolveKey(ctx, apiKey)
}

func (s *taskService) ListTasks(ctx context.Context, apiKey string) ([]domain.Task, error) {
	return s.store.ListTasks(ctx, apiKey)
}

func (s *taskService) CreateTask(ctx context.Context, apiKey string, fields map[string]any) (domain.Task, error) {
	normalized, fieldErrs := domain.ValidateTaskFields(fields, domain.PresenceRequired)
	if fieldErrs != nil {
		return domain.Task{}, fieldErrs
	}

	task, err := s.store.CreateTask(ctx, apiKey, *normalized.Name, *normalized.Done)
	if err != nil {
		return domain.Task{}, err
	}

	s.logger.Debug("created task", slog.String("task_id", task.ID))
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, apiKey, taskID string, fields map[string]any) (domain.Task, error) {
	normalized, fieldErrs := domain.ValidateTaskFields(fields, domain.PresenceOptional)
	if fieldErrs != nil {
		return domain.Task{}, fieldErrs
	}

	task, err := s.store.UpdateTask(ctx, apiKey, taskID, normalized)
	if err != nil {
		return domain.Task{}, err
	}

	s.logger.Debug("updated task", slog.String("task_id", task.ID))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, apiKey, taskID string) error {
	if err := s.store.DeleteTask(ctx, apiKey, taskID); err != nil {
		return err
	}

	s.logger.Debug("deleted task", slog.String("task_id", taskID))
	return nil
}

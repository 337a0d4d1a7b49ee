// Package store defines interfaces for session and task storage operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, allowing business rules to remain independent
// of how session data is held.
package store

import (
	"context"

	"github.com/mjachowicz/taskpad-api/internal/domain"
)

// SessionStore owns all session and task data. Every mutation of a session's
// task list goes through this interface; implementations must serialize
// mutations on a single session while leaving different sessions independent.
type SessionStore interface {
	// IssueKey mints a new unique API key, registers a session for it, and
	// seeds the session with the default tasks. When the registry exceeds its
	// session cap, the oldest-issued key is evicted together with its tasks.
	IssueKey(ctx context.Context) (string, error)

	// ResolveKey reports whether the key identifies a live session.
	// Returns ErrSessionNotFound for keys never issued or since evicted.
	ResolveKey(ctx context.Context, apiKey string) error

	// ListTasks returns the session's full task list in insertion order.
	ListTasks(ctx context.Context, apiKey string) ([]domain.Task, error)

	// CreateTask appends a new task with a fresh ID and current timestamp.
	// The name is expected to be normalized. Returns ErrDuplicateTaskName if
	// the session already holds a task with that name. When the list exceeds
	// its cap, the oldest task is evicted; the cap is never exceeded.
	CreateTask(ctx context.Context, apiKey, name string, done bool) (domain.Task, error)

	// UpdateTask merges the provided fields into the task with the given ID.
	// Nil fields are left untouched; ID and CreatedAt never change.
	// Returns ErrTaskNotFound if the session has no task with that ID.
	UpdateTask(ctx context.Context, apiKey, taskID string, fields domain.TaskFields) (domain.Task, error)

	// DeleteTask removes the task with the given ID from the session.
	// Returns ErrTaskNotFound if the session has no task with that ID.
	DeleteTask(ctx context.Context, apiKey, taskID string) error
}

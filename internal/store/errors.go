package store

import "errors"

// Common store errors returned by SessionStore implementations.
// The API layer maps these to HTTP status codes with errors.Is.
var (
	// ErrSessionNotFound is returned when an API key was never issued or its
	// session has since been evicted from the registry.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTaskNotFound is returned when a session holds no task with the
	// requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTaskName is returned when creating a task whose normalized
	// name already exists in the session's list.
	ErrDuplicateTaskName = errors.New("task name already exists")
)

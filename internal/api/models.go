package api

import (
	"time"

	"github.com/mjachowicz/taskpad-api/internal/domain"
)

// TaskResponse represents the response data for a task.
// CreatedAt marshals as an ISO-8601 timestamp.
type TaskResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Name:      task.Name,
		Done:      task.Done,
		CreatedAt: task.CreatedAt,
	}
}

// tasksToResponse converts a task list to response form. The result is never
// nil so an empty list serializes as [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

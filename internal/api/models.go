package api

import "github.com/phrazzld/task-api/internal/domain"

// TaskRequest defines the payload for creating or updating a task.
type TaskRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:   task.ID,
		Text: task.Text,
	}
}

// tasksToResponse converts tasks to responses. The result is never nil so an
// empty list encodes as [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, taskToResponse(&tasks[i]))
	}
	return responses
}

package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations must be safe for concurrent use and must return copies,
// never references into their internal state.
type TaskStore interface {
	// List returns all tasks in insertion order.
	// Returns an empty, non-nil slice when the store holds no tasks.
	List(ctx context.Context) ([]domain.Task, error)

	// Create assigns the next identifier to a new task with the given text and saves it.
	// Returns a validation error (wrapping domain.ErrValidation) if text is blank;
	// no identifier is consumed in that case.
	Create(ctx context.Context, text string) (*domain.Task, error)

	// GetByID retrieves a task by its identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces the text of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns validation errors if the text is blank.
	Update(ctx context.Context, id int64, text string) (*domain.Task, error)

	// Delete removes a task by its identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of tasks currently held.
	Count(ctx context.Context) (int, error)
}

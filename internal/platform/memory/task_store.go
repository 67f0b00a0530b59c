package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements the store.TaskStore interface on top of an
// insertion-ordered slice.
//
// A single mutex guards both the slice and the id counter, so allocating an
// id and appending the task is observed as one step. Lookups are linear scans.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []domain.Task
	lastID int64
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore with room for initialCapacity tasks.
// If logger is nil, a default logger will be used.
func NewTaskStore(initialCapacity int, logger *slog.Logger) *TaskStore {
	if initialCapacity < 0 {
		initialCapacity = 0
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make([]domain.Task, 0, initialCapacity),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// List implements store.TaskStore.List
// The returned slice is a snapshot; later mutations are not reflected in it.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot, nil
}

// Create implements store.TaskStore.Create
// Ids start at 1 and are never reused, even after the task holding one is deleted.
func (s *TaskStore) Create(ctx context.Context, text string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Validate before taking an id so a rejected create leaves the counter alone.
	if err := domain.ValidateTaskText(text); err != nil {
		log.Debug("task validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(s.lastID+1, text)
	if err != nil {
		return nil, err
	}

	s.lastID = task.ID
	s.tasks = append(s.tasks, *task)

	log.Debug("task stored", slog.Int64("task_id", task.ID), slog.Int("task_count", len(s.tasks)))
	return task, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.FromContextOrDefault(ctx, s.logger).
			Debug("task not found", slog.Int64("task_id", id))
		return nil, notFound("get", id)
	}

	task := s.tasks[i]
	return &task, nil
}

// Update implements store.TaskStore.Update
// Only the text changes; the task keeps its id and its position in the list.
func (s *TaskStore) Update(ctx context.Context, id int64, text string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := domain.ValidateTaskText(text); err != nil {
		log.Debug("task validation failed during update",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found for update", slog.Int64("task_id", id))
		return nil, notFound("update", id)
	}

	if err := s.tasks[i].UpdateText(text); err != nil {
		return nil, err
	}

	task := s.tasks[i]
	log.Debug("task updated", slog.Int64("task_id", id))
	return &task, nil
}

// Delete implements store.TaskStore.Delete
// Survivors keep their relative order.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found for delete", slog.Int64("task_id", id))
		return notFound("delete", id)
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	log.Debug("task deleted", slog.Int64("task_id", id), slog.Int("task_count", len(s.tasks)))
	return nil
}

// Count implements store.TaskStore.Count
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks), nil
}

// notFound reports a missing task as a store error wrapping store.ErrTaskNotFound.
func notFound(operation string, id int64) error {
	return store.NewStoreError("task", operation, fmt.Sprintf("no task with id %d", id), store.ErrTaskNotFound)
}

// indexOf returns the position of the first task with the given id, or -1.
// Callers must hold s.mu.
func (s *TaskStore) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

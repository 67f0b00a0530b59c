package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask creates a task with the next available identifier.
	CreateTask(ctx context.Context, text string) (*domain.Task, error)

	// GetTask retrieves a task by its identifier.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask replaces the text of an existing task.
	UpdateTask(ctx context.Context, id int64, text string) (*domain.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService
// It returns an error if the store is nil. A nil eventEmitter disables task events.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

// textPayload is the event payload for created and updated tasks.
type textPayload struct {
	Text string `json:"text"`
}

// emit publishes a task event. The mutation has already been applied, so
// failures are logged and never returned to the caller.
func (s *taskServiceImpl) emit(ctx context.Context, eventType events.Type, taskID int64, payload interface{}) {
	if s.eventEmitter == nil {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	event, err := events.NewTaskEvent(eventType, taskID, payload)
	if err != nil {
		log.Error("failed to build task event", "error", err, "event_type", eventType)
		return
	}
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit task event",
			"error", err,
			"event_type", eventType,
			"task_id", taskID)
	}
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
// Text is validated here so blank input never reaches the store.
func (s *taskServiceImpl) CreateTask(ctx context.Context, text string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTaskText(text); err != nil {
		log.Debug("rejected task with blank text")
		return nil, err
	}

	task, err := s.taskStore.Create(ctx, text)
	if err != nil {
		log.Error("failed to create task", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", task.ID)
	s.emit(ctx, events.TaskCreated, task.ID, textPayload{Text: task.Text})
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
				"error", err,
				"task_id", id)
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, text string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTaskText(text); err != nil {
		log.Debug("rejected task update with blank text", "task_id", id)
		return nil, err
	}

	task, err := s.taskStore.Update(ctx, id, text)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update", "task_id", id)
		} else {
			log.Error("failed to update task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", "task_id", task.ID)
	s.emit(ctx, events.TaskUpdated, task.ID, textPayload{Text: task.Text})
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete", "task_id", id)
		} else {
			log.Error("failed to delete task", "error", err, "task_id", id)
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	s.emit(ctx, events.TaskDeleted, id, nil)
	return nil
}

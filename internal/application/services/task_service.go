package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// TaskService handles task-related operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

// ListTasks retrieves every task owned by ownerID.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// CreateTask creates a new task for ownerID.
func (s *TaskService) CreateTask(ctx context.Context, ownerID string, req ports.CreateTaskRequest) (*entities.Task, error) {
	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		OwnerID:     ownerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "title", task.Title, "category", task.Category)

	return task, nil
}

// UpdateTask merges the set fields of req into the stored task.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	patch := ports.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		Category:    req.Category,
	}

	task, err := s.taskRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task updated", "task_id", task.ID)

	return task, nil
}

// DeleteTask removes the task.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task deleted", "task_id", id)

	return nil
}

// GroupTasks buckets the owner's tasks by due date. The optional category and
// window narrow the input before bucketing; an unset Now means "right now".
func (s *TaskService) GroupTasks(ctx context.Context, ownerID string, req ports.GroupTasksRequest) (planner.Groups, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if req.Category != "" {
		filtered := make([]*entities.Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Category == req.Category {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}

	if req.Window != "" && req.Window != planner.WindowAll {
		tasks = planner.FilterTasksByWindow(tasks, req.Window, now)
	}

	return planner.GroupByDue(tasks, now), nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/ports"
)

type TaskRepository struct {
	mtx   sync.RWMutex
	rows  map[uuid.UUID]*entities.Task
	order []uuid.UUID
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		rows: make(map[uuid.UUID]*entities.Task),
	}
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	tasks := make([]*entities.Task, 0)
	for _, id := range r.order {
		if task, ok := r.rows[id]; ok && task.OwnerID == ownerID {
			clone := *task
			tasks = append(tasks, &clone)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	task, ok := r.rows[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	clone := *task
	r.rows[task.ID] = &clone
	r.order = append(r.order, task.ID)
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, patch ports.TaskPatch) (*entities.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	task, ok := r.rows[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		description := *patch.Description
		task.Description = &description
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.ProjectID != nil {
		projectID := *patch.ProjectID
		task.ProjectID = &projectID
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}

	clone := *task
	return &clone, nil
}

// Delete is idempotent: removing an id that is already gone succeeds.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rows[id]; !ok {
		return nil
	}
	delete(r.rows, id)
	r.order = removeID(r.order, id)
	return nil
}

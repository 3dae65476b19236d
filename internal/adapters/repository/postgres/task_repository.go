package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	query := `
		SELECT id, title, description, due_date, completed, priority, project_id, category, owner_id, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at, id`

	tasks := make([]*entities.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, query, ownerID); err != nil {
		return nil, fmt.Errorf("list tasks by owner: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	query := `
		SELECT id, title, description, due_date, completed, priority, project_id, category, owner_id, created_at
		FROM tasks
		WHERE id = $1`

	var task entities.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, due_date, completed, priority, project_id, category, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate, task.Completed,
		task.Priority, task.ProjectID, task.Category, task.OwnerID,
	).Scan(&task.CreatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch ports.TaskPatch) (*entities.Task, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			due_date = COALESCE($4, due_date),
			completed = COALESCE($5, completed),
			priority = COALESCE($6, priority),
			project_id = COALESCE($7, project_id),
			category = COALESCE($8, category)
		WHERE id = $1
		RETURNING id, title, description, due_date, completed, priority, project_id, category, owner_id, created_at`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query,
		id, patch.Title, patch.Description, patch.DueDate, patch.Completed,
		patch.Priority, patch.ProjectID, patch.Category,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &task, nil
}

// Delete succeeds whether or not the row exists.
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

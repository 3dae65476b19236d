// Package postgres holds the sqlx-backed persistence gateways. Updates use
// COALESCE so a null bind parameter leaves the stored column untouched,
// giving the merge semantics the patch types promise.
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

// ProjectRepositoryImpl implements the ProjectRepository interface
type ProjectRepositoryImpl struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) ports.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Project, error) {
	query := `
		SELECT id, title, description, due_date, status, priority, owner_id, created_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY created_at, id`

	projects := make([]*entities.Project, 0)
	if err := r.db.SelectContext(ctx, &projects, query, ownerID); err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	query := `
		SELECT id, title, description, due_date, status, priority, owner_id, created_at
		FROM projects
		WHERE id = $1`

	var project entities.Project
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}

	return &project, nil
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entities.Project) error {
	query := `
		INSERT INTO projects (id, title, description, due_date, status, priority, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.Title, project.Description, project.DueDate,
		project.Status, project.Priority, project.OwnerID,
	).Scan(&project.CreatedAt)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch ports.ProjectPatch) (*entities.Project, error) {
	query := `
		UPDATE projects
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			due_date = COALESCE($4, due_date),
			status = COALESCE($5, status),
			priority = COALESCE($6, priority)
		WHERE id = $1
		RETURNING id, title, description, due_date, status, priority, owner_id, created_at`

	var project entities.Project
	err := r.db.GetContext(ctx, &project, query,
		id, patch.Title, patch.Description, patch.DueDate, patch.Status, patch.Priority,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	return &project, nil
}

// Delete succeeds whether or not the row exists.
func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

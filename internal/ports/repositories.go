package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
)

// ProjectRepository defines the persistence gateway for projects. All list
// reads are owner-scoped; Delete is idempotent (an absent id is not an
// error).
type ProjectRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	Create(ctx context.Context, project *entities.Project) error
	Update(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*entities.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the persistence gateway for tasks.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	Create(ctx context.Context, task *entities.Task) error
	Update(ctx context.Context, id uuid.UUID, patch TaskPatch) (*entities.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JournalRepository defines the persistence gateway for journal entries.
type JournalRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Journal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Journal, error)
	Create(ctx context.Context, journal *entities.Journal) error
	Update(ctx context.Context, id uuid.UUID, patch JournalPatch) (*entities.Journal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Patch types carry partial updates: a nil field is left untouched, a
// non-nil field replaces the stored value. There is no way to unset a field,
// matching the merge semantics of the update operation.

type ProjectPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *entities.ProjectStatus
	Priority    *entities.Priority
}

type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	Priority    *entities.Priority
	ProjectID   *uuid.UUID
	Category    *entities.TaskCategory
}

type JournalPatch struct {
	Title   *string
	Content *string
	Date    *time.Time
	Mood    *entities.Mood
	Tags    *[]string
}

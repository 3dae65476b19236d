// Package memory holds map-backed repositories used by tests and the
// in-memory server mode. Rows are kept in insertion order so lists come back
// in a stable, creation-ordered sequence like the SQL gateways.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/ports"
)

type ProjectRepository struct {
	mtx   sync.RWMutex
	rows  map[uuid.UUID]*entities.Project
	order []uuid.UUID
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		rows: make(map[uuid.UUID]*entities.Project),
	}
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Project, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	projects := make([]*entities.Project, 0)
	for _, id := range r.order {
		if project, ok := r.rows[id]; ok && project.OwnerID == ownerID {
			clone := *project
			projects = append(projects, &clone)
		}
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	project, ok := r.rows[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	clone := *project
	return &clone, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	clone := *project
	r.rows[project.ID] = &clone
	r.order = append(r.order, project.ID)
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, patch ports.ProjectPatch) (*entities.Project, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	project, ok := r.rows[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		project.DueDate = &due
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.Priority != nil {
		project.Priority = *patch.Priority
	}

	clone := *project
	return &clone, nil
}

// Delete is idempotent: removing an id that is already gone succeeds.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rows[id]; !ok {
		return nil
	}
	delete(r.rows, id)
	r.order = removeID(r.order, id)
	return nil
}

// removeID drops one id from an insertion-order slice so it cannot grow
// without bound under create/delete churn.
func removeID(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo ports.ProjectRepository
	logger      *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo ports.ProjectRepository, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

var _ ports.ProjectService = (*ProjectService)(nil)

// ListProjects retrieves every project owned by ownerID.
func (s *ProjectService) ListProjects(ctx context.Context, ownerID string) ([]*entities.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// CreateProject creates a new project for ownerID.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID string, req ports.CreateProjectRequest) (*entities.Project, error) {
	project := &entities.Project{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
		OwnerID:     ownerID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("Project created", "project_id", project.ID, "title", project.Title)

	return project, nil
}

// UpdateProject merges the set fields of req into the stored project.
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, req ports.UpdateProjectRequest) (*entities.Project, error) {
	patch := ports.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	project, err := s.projectRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.logger.Info("Project updated", "project_id", project.ID)

	return project, nil
}

// DeleteProject removes the project. Tasks referencing it are left alone:
// the link is a weak reference, not ownership.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("Project deleted", "project_id", id)

	return nil
}

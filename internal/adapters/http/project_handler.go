package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	projectService ports.ProjectService
	logger         *logger.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ports.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects returns every project of the authenticated owner.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	ownerID := getOwnerIDFromContext(c)

	projects, err := h.projectService.ListProjects(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("List projects failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list projects")
	}

	return c.JSON(http.StatusOK, projects)
}

// CreateProject handles project creation
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req ports.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ownerID := getOwnerIDFromContext(c)

	project, err := h.projectService.CreateProject(c.Request().Context(), ownerID, req)
	if err != nil {
		h.logger.Error("Create project failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create project")
	}

	return c.JSON(http.StatusCreated, project)
}

// UpdateProject handles partial project updates
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrProjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		h.logger.Error("Update project failed", "error", err, "project_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update project")
	}

	return c.JSON(http.StatusOK, project)
}

// DeleteProject handles project deletion
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete project failed", "error", err, "project_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete project")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Project deleted successfully"})
}

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns every task of the authenticated owner.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := getOwnerIDFromContext(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask handles task creation
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ownerID := getOwnerIDFromContext(c)

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID, req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles partial task updates
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Error("Update task failed", "error", err, "task_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles task deletion
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete task failed", "error", err, "task_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete task")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task deleted successfully"})
}

// GroupTasks buckets the owner's tasks by due date, optionally narrowed by
// the category and window query parameters.
func (h *TaskHandler) GroupTasks(c echo.Context) error {
	req := ports.GroupTasksRequest{
		Category: entities.TaskCategory(c.QueryParam("category")),
		Window:   planner.TimeWindow(c.QueryParam("window")),
		Now:      time.Now().UTC(),
	}

	if req.Category != "" && !req.Category.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category")
	}
	if req.Window != "" && !req.Window.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid window")
	}

	ownerID := getOwnerIDFromContext(c)

	groups, err := h.taskService.GroupTasks(c.Request().Context(), ownerID, req)
	if err != nil {
		h.logger.Error("Group tasks failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to group tasks")
	}

	return c.JSON(http.StatusOK, groups)
}

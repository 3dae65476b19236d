package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
)

// ProjectService interface for project operations
type ProjectService interface {
	ListProjects(ctx context.Context, ownerID string) ([]*entities.Project, error)
	CreateProject(ctx context.Context, ownerID string, req CreateProjectRequest) (*entities.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*entities.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// TaskService interface for task operations
type TaskService interface {
	ListTasks(ctx context.Context, ownerID string) ([]*entities.Task, error)
	CreateTask(ctx context.Context, ownerID string, req CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	GroupTasks(ctx context.Context, ownerID string, req GroupTasksRequest) (planner.Groups, error)
}

// JournalService interface for journal operations
type JournalService interface {
	ListJournals(ctx context.Context, ownerID string) ([]*entities.Journal, error)
	CreateJournal(ctx context.Context, ownerID string, req CreateJournalRequest) (*entities.Journal, error)
	UpdateJournal(ctx context.Context, id uuid.UUID, req UpdateJournalRequest) (*entities.Journal, error)
	DeleteJournal(ctx context.Context, id uuid.UUID) error
}

// DashboardService assembles the derived read-only projections for one owner.
type DashboardService interface {
	GetDashboard(ctx context.Context, ownerID string, now time.Time) (*Dashboard, error)
}

// Request/Response Types

// Project related types
type CreateProjectRequest struct {
	Title       string                 `json:"title" validate:"required,max=200"`
	Description string                 `json:"description" validate:"max=2000"`
	DueDate     *time.Time             `json:"dueDate"`
	Status      entities.ProjectStatus `json:"status" validate:"required,oneof=planning in-progress completed on-hold"`
	Priority    entities.Priority      `json:"priority" validate:"required,oneof=low medium high"`
}

type UpdateProjectRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,max=200"`
	Description *string                 `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time              `json:"dueDate"`
	Status      *entities.ProjectStatus `json:"status" validate:"omitempty,oneof=planning in-progress completed on-hold"`
	Priority    *entities.Priority      `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// Task related types
type CreateTaskRequest struct {
	Title       string                `json:"title" validate:"required,max=500"`
	Description *string               `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time            `json:"dueDate"`
	Completed   bool                  `json:"completed"`
	Priority    entities.Priority     `json:"priority" validate:"required,oneof=low medium high"`
	ProjectID   *uuid.UUID            `json:"projectId"`
	Category    entities.TaskCategory `json:"category" validate:"required,oneof=project school personal other"`
}

type UpdateTaskRequest struct {
	Title       *string                `json:"title" validate:"omitempty,max=500"`
	Description *string                `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time             `json:"dueDate"`
	Completed   *bool                  `json:"completed"`
	Priority    *entities.Priority     `json:"priority" validate:"omitempty,oneof=low medium high"`
	ProjectID   *uuid.UUID             `json:"projectId"`
	Category    *entities.TaskCategory `json:"category" validate:"omitempty,oneof=project school personal other"`
}

// GroupTasksRequest narrows which tasks feed the time buckets.
type GroupTasksRequest struct {
	Category entities.TaskCategory `json:"category" validate:"omitempty,oneof=project school personal other"`
	Window   planner.TimeWindow    `json:"window" validate:"omitempty,oneof=all today week upcoming past"`
	Now      time.Time             `json:"-"`
}

// Journal related types
type CreateJournalRequest struct {
	Title   string         `json:"title" validate:"required,max=200"`
	Content string         `json:"content" validate:"required"`
	Date    time.Time      `json:"date" validate:"required"`
	Mood    *entities.Mood `json:"mood" validate:"omitempty,oneof=great good neutral bad terrible"`
	Tags    []string       `json:"tags"`
}

type UpdateJournalRequest struct {
	Title   *string        `json:"title" validate:"omitempty,max=200"`
	Content *string        `json:"content" validate:"omitempty"`
	Date    *time.Time     `json:"date"`
	Mood    *entities.Mood `json:"mood" validate:"omitempty,oneof=great good neutral bad terrible"`
	Tags    *[]string      `json:"tags"`
}

// Dashboard is the derived read model surfaced at /dashboard. Everything in
// it is recomputed from the owner's collections on each request.
type Dashboard struct {
	UpcomingTasks  []*entities.Task        `json:"upcomingTasks"`
	OverdueTasks   []*entities.Task        `json:"overdueTasks"`
	ActiveProjects []*entities.Project     `json:"activeProjects"`
	RecentJournals []*entities.Journal     `json:"recentJournals"`
	Notifications  []entities.Notification `json:"notifications"`
}

// MessageResponse is the confirmation body for deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

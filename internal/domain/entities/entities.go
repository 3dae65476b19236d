package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrJournalNotFound = errors.New("journal not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidMood     = errors.New("invalid mood")
)

// Enums and types
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on-hold"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TaskCategory string

const (
	TaskCategoryProject  TaskCategory = "project"
	TaskCategorySchool   TaskCategory = "school"
	TaskCategoryPersonal TaskCategory = "personal"
	TaskCategoryOther    TaskCategory = "other"
)

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// Project represents a tracked project owned by a single user
type Project struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	DueDate     *time.Time    `json:"dueDate" db:"due_date"`
	Status      ProjectStatus `json:"status" db:"status"`
	Priority    Priority      `json:"priority" db:"priority"`
	OwnerID     string        `json:"userId" db:"owner_id"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
}

// Task represents a single todo item. ProjectID is a weak reference:
// deleting a project never cascades to its tasks.
type Task struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	DueDate     *time.Time   `json:"dueDate" db:"due_date"`
	Completed   bool         `json:"completed" db:"completed"`
	Priority    Priority     `json:"priority" db:"priority"`
	ProjectID   *uuid.UUID   `json:"projectId" db:"project_id"`
	Category    TaskCategory `json:"category" db:"category"`
	OwnerID     string       `json:"userId" db:"owner_id"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}

// Journal represents a dated journal entry. Date is the day the entry is
// about, distinct from CreatedAt.
type Journal struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Date      time.Time `json:"date" db:"date"`
	Mood      *Mood     `json:"mood" db:"mood"`
	Tags      []string  `json:"tags" db:"-"`
	OwnerID   string    `json:"userId" db:"owner_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Notification is a transient record derived from the task set. It is never
// persisted; a recomputation with the same inputs yields an equivalent list.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	RelatedID *uuid.UUID       `json:"relatedId,omitempty"`
}

// User mirrors the identity provider's view of the signed-in user. The
// service only reads it from token claims and never stores or mutates it.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Rank orders priorities for in-bucket sorting: high first, low last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (ps ProjectStatus) IsValid() bool {
	switch ps {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (tc TaskCategory) IsValid() bool {
	switch tc {
	case TaskCategoryProject, TaskCategorySchool, TaskCategoryPersonal, TaskCategoryOther:
		return true
	default:
		return false
	}
}

func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodTerrible:
		return true
	default:
		return false
	}
}

// IsOverdue reports whether the task is past its due date and still open.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(now)
}

// HasTag reports whether the journal carries the exact tag.
func (j *Journal) HasTag(tag string) bool {
	for _, t := range j.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/lifeboard/core/internal/domain/entities"
)

// TimeWindow restricts school tasks by when they are due.
type TimeWindow string

const (
	WindowAll      TimeWindow = "all"
	WindowToday    TimeWindow = "today"
	WindowWeek     TimeWindow = "week"
	WindowUpcoming TimeWindow = "upcoming"
	WindowPast     TimeWindow = "past"
)

func (w TimeWindow) IsValid() bool {
	switch w {
	case WindowAll, WindowToday, WindowWeek, WindowUpcoming, WindowPast:
		return true
	default:
		return false
	}
}

// FilterJournals applies the journal view's two predicates with AND
// semantics: a case-insensitive substring match against title, content, and
// tags, plus one exact tag. Empty term or tag disables that predicate.
// Results come back newest first.
func FilterJournals(journals []*entities.Journal, term, tag string) []*entities.Journal {
	term = strings.ToLower(term)

	filtered := make([]*entities.Journal, 0)
	for _, journal := range journals {
		if term != "" && !journalMatches(journal, term) {
			continue
		}
		if tag != "" && !journal.HasTag(tag) {
			continue
		}
		filtered = append(filtered, journal)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

func journalMatches(journal *entities.Journal, term string) bool {
	if strings.Contains(strings.ToLower(journal.Title), term) ||
		strings.Contains(strings.ToLower(journal.Content), term) {
		return true
	}
	for _, tag := range journal.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// AllTags collects every tag used across the journals, deduplicated and
// alphabetically sorted.
func AllTags(journals []*entities.Journal) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, journal := range journals {
		for _, tag := range journal.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// TodoFilter holds the todo view's optional filters. A zero value means no
// filtering beyond the personal/other category restriction.
type TodoFilter struct {
	Term          string
	HideCompleted bool
	Priority      entities.Priority // empty = all priorities
}

// FilterTodos restricts tasks to the personal and other categories, applies
// the optional filters, and sorts by completion, then due date (undated
// last), then priority rank.
func FilterTodos(tasks []*entities.Task, filter TodoFilter) []*entities.Task {
	term := strings.ToLower(filter.Term)

	todos := make([]*entities.Task, 0)
	for _, task := range tasks {
		if task.Category != entities.TaskCategoryPersonal && task.Category != entities.TaskCategoryOther {
			continue
		}
		if term != "" && !todoMatches(task, term) {
			continue
		}
		if filter.HideCompleted && task.Completed {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		todos = append(todos, task)
	}

	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			if !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
	return todos
}

func todoMatches(task *entities.Task, term string) bool {
	if strings.Contains(strings.ToLower(task.Title), term) {
		return true
	}
	return task.Description != nil && strings.Contains(strings.ToLower(*task.Description), term)
}

// FilterProjects applies the project board's independent status and priority
// equality filters. Empty values mean "all".
func FilterProjects(projects []*entities.Project, status entities.ProjectStatus, priority entities.Priority) []*entities.Project {
	filtered := make([]*entities.Project, 0)
	for _, project := range projects {
		if status != "" && project.Status != status {
			continue
		}
		if priority != "" && project.Priority != priority {
			continue
		}
		filtered = append(filtered, project)
	}
	return filtered
}

// FilterSchoolTasks returns school-category tasks inside the requested time
// window. Undated tasks only pass the "all" window.
func FilterSchoolTasks(tasks []*entities.Task, window TimeWindow, now time.Time) []*entities.Task {
	school := make([]*entities.Task, 0)
	for _, task := range tasks {
		if task.Category == entities.TaskCategorySchool {
			school = append(school, task)
		}
	}
	return FilterTasksByWindow(school, window, now)
}

// FilterTasksByWindow keeps the tasks due inside the requested time window.
// Undated tasks only pass the "all" window.
func FilterTasksByWindow(tasks []*entities.Task, window TimeWindow, now time.Time) []*entities.Task {
	filtered := make([]*entities.Task, 0)
	for _, task := range tasks {
		if inWindow(task, window, now) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

func inWindow(task *entities.Task, window TimeWindow, now time.Time) bool {
	if task.DueDate == nil {
		return window == WindowAll || window == ""
	}
	switch window {
	case WindowToday:
		return daysBetween(now, *task.DueDate) == 0
	case WindowWeek:
		return sameWeek(*task.DueDate, now)
	case WindowUpcoming:
		return task.DueDate.After(now)
	case WindowPast:
		return task.DueDate.Before(now)
	default:
		return true
	}
}

package planner

import (
	"sort"
	"time"

	"github.com/lifeboard/core/internal/domain/entities"
)

// upcomingWindowDays is how far ahead the dashboard looks for open tasks.
const upcomingWindowDays = 7

// UpcomingTasks returns open tasks due between today and seven days out,
// soonest first.
func UpcomingTasks(tasks []*entities.Task, now time.Time) []*entities.Task {
	today := dayOf(now)
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	upcoming := make([]*entities.Task, 0)
	for _, task := range tasks {
		if task.DueDate == nil || task.Completed {
			continue
		}
		if task.DueDate.Before(today) || task.DueDate.After(horizon) {
			continue
		}
		upcoming = append(upcoming, task)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})
	return upcoming
}

// OverdueTasks returns open tasks due before today, most recently missed
// first.
func OverdueTasks(tasks []*entities.Task, now time.Time) []*entities.Task {
	today := dayOf(now)

	overdue := make([]*entities.Task, 0)
	for _, task := range tasks {
		if task.DueDate == nil || task.Completed {
			continue
		}
		if !task.DueDate.Before(today) {
			continue
		}
		overdue = append(overdue, task)
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueDate.After(*overdue[j].DueDate)
	})
	return overdue
}

// ActiveProjects returns in-progress projects ordered by due date. Projects
// without a due date compare equal to everything, so the stable sort leaves
// them where they were encountered.
func ActiveProjects(projects []*entities.Project) []*entities.Project {
	active := make([]*entities.Project, 0)
	for _, project := range projects {
		if project.Status == entities.ProjectStatusInProgress {
			active = append(active, project)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].DueDate == nil || active[j].DueDate == nil {
			return false
		}
		return active[i].DueDate.Before(*active[j].DueDate)
	})
	return active
}

// RecentJournals returns the three newest entries by journal date.
func RecentJournals(journals []*entities.Journal) []*entities.Journal {
	recent := make([]*entities.Journal, len(journals))
	copy(recent, journals)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})

	if len(recent) > 3 {
		recent = recent[:3]
	}
	return recent
}

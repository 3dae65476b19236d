package planner_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
)

func newProject(title string, status entities.ProjectStatus, due *time.Time) *entities.Project {
	return &entities.Project{
		ID:       uuid.New(),
		Title:    title,
		Status:   status,
		Priority: entities.PriorityMedium,
		DueDate:  due,
	}
}

func newJournal(title string, date time.Time, tags ...string) *entities.Journal {
	return &entities.Journal{
		ID:      uuid.New(),
		Title:   title,
		Content: "entry body",
		Date:    date,
		Tags:    tags,
	}
}

func TestUpcomingTasks_WindowAndOrder(t *testing.T) {
	inWindow1 := newTask("due wednesday", entities.PriorityLow, dueOn(2024, 6, 12), false)
	inWindow2 := newTask("due today", entities.PriorityLow, dueOn(2024, 6, 10), false)
	tasks := []*entities.Task{
		inWindow1,
		newTask("overdue", entities.PriorityHigh, dueOn(2024, 6, 9), false),
		inWindow2,
		newTask("past the window", entities.PriorityHigh, dueOn(2024, 6, 20), false),
		newTask("completed", entities.PriorityHigh, dueOn(2024, 6, 12), true),
		newTask("undated", entities.PriorityHigh, nil, false),
	}

	upcoming := planner.UpcomingTasks(tasks, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "due today", upcoming[0].Title)
	assert.Equal(t, "due wednesday", upcoming[1].Title)
}

func TestOverdueTasks_DescendingByDueDate(t *testing.T) {
	tasks := []*entities.Task{
		newTask("older miss", entities.PriorityLow, dueOn(2024, 6, 1), false),
		newTask("due later today", entities.PriorityLow, dueOn(2024, 6, 10), false),
		newTask("recent miss", entities.PriorityLow, dueOn(2024, 6, 8), false),
		newTask("completed miss", entities.PriorityLow, dueOn(2024, 6, 2), true),
	}

	overdue := planner.OverdueTasks(tasks, now)

	require.Len(t, overdue, 2)
	assert.Equal(t, "recent miss", overdue[0].Title)
	assert.Equal(t, "older miss", overdue[1].Title)
}

func TestActiveProjects_UndatedKeepPosition(t *testing.T) {
	projects := []*entities.Project{
		newProject("undated a", entities.ProjectStatusInProgress, nil),
		newProject("due late", entities.ProjectStatusInProgress, dueOn(2024, 9, 1)),
		newProject("done", entities.ProjectStatusCompleted, dueOn(2024, 6, 11)),
		newProject("due soon", entities.ProjectStatusInProgress, dueOn(2024, 6, 12)),
		newProject("on hold", entities.ProjectStatusOnHold, nil),
	}

	active := planner.ActiveProjects(projects)

	require.Len(t, active, 3)
	// Dated pair is ordered; the undated one compares equal to either side
	// and stays put under the stable sort.
	assert.Equal(t, "undated a", active[0].Title)
	assert.Equal(t, "due soon", active[1].Title)
	assert.Equal(t, "due late", active[2].Title)
}

func TestRecentJournals_TopThreeNewestFirst(t *testing.T) {
	journals := []*entities.Journal{
		newJournal("monday", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)),
		newJournal("friday", time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)),
		newJournal("sunday", time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)),
		newJournal("tuesday", time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)),
	}

	recent := planner.RecentJournals(journals)

	require.Len(t, recent, 3)
	assert.Equal(t, "sunday", recent[0].Title)
	assert.Equal(t, "friday", recent[1].Title)
	assert.Equal(t, "tuesday", recent[2].Title)

	// Input order untouched.
	assert.Equal(t, "monday", journals[0].Title)
}

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

// Monday, 2024-06-10 noon.
var now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func dueOn(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	return &d
}

func newTask(title string, priority entities.Priority, due *time.Time, completed bool) *entities.Task {
	return &entities.Task{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		DueDate:   due,
		Completed: completed,
		Category:  entities.TaskCategorySchool,
	}
}

func TestGroupByDue_BucketAssignment(t *testing.T) {
	tests := []struct {
		name   string
		due    *time.Time
		bucket string
	}{
		{"due yesterday is overdue", dueOn(2024, 6, 9), planner.BucketOverdue},
		{"due today is today", dueOn(2024, 6, 10), planner.BucketToday},
		{"due next day is tomorrow", dueOn(2024, 6, 11), planner.BucketTomorrow},
		{"due thursday is this week", dueOn(2024, 6, 13), planner.BucketThisWeek},
		{"due sunday is this week", dueOn(2024, 6, 16), planner.BucketThisWeek},
		{"due next month is upcoming", dueOn(2024, 7, 1), planner.BucketUpcoming},
		{"no due date is upcoming", nil, planner.BucketUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTask("homework", entities.PriorityMedium, tt.due, false)
			groups := planner.GroupByDue([]*entities.Task{task}, now)

			bucket := groups.Get(tt.bucket)
			require.Len(t, bucket, 1)
			assert.Equal(t, task.ID, bucket[0].ID)
		})
	}
}

func TestGroupByDue_TomorrowRollsOverBoundaries(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		due  *time.Time
	}{
		{"month boundary", time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC), dueOn(2024, 2, 1)},
		{"year boundary", time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), dueOn(2025, 1, 1)},
		{"leap february", time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), dueOn(2024, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTask("rollover", entities.PriorityLow, tt.due, false)
			groups := planner.GroupByDue([]*entities.Task{task}, tt.now)
			assert.Len(t, groups.Get(planner.BucketTomorrow), 1)
		})
	}
}

func TestGroupByDue_CompletedBeatsDueDate(t *testing.T) {
	task := newTask("done long ago", entities.PriorityHigh, dueOn(2023, 1, 1), true)
	groups := planner.GroupByDue([]*entities.Task{task}, now)

	assert.Len(t, groups.Get(planner.BucketCompleted), 1)
	assert.Empty(t, groups.Get(planner.BucketOverdue))
}

func TestGroupByDue_BucketsPartitionTheSet(t *testing.T) {
	tasks := []*entities.Task{
		newTask("a", entities.PriorityLow, dueOn(2024, 6, 8), false),
		newTask("b", entities.PriorityHigh, dueOn(2024, 6, 10), false),
		newTask("c", entities.PriorityMedium, dueOn(2024, 6, 11), false),
		newTask("d", entities.PriorityLow, dueOn(2024, 6, 14), false),
		newTask("e", entities.PriorityHigh, dueOn(2024, 8, 2), false),
		newTask("f", entities.PriorityMedium, nil, false),
		newTask("g", entities.PriorityLow, dueOn(2024, 6, 9), true),
	}

	groups := planner.GroupByDue(tasks, now)

	seen := make(map[string]int)
	total := 0
	for _, group := range groups {
		for _, task := range group.Tasks {
			seen[task.Title]++
			total++
		}
	}

	assert.Equal(t, len(tasks), total)
	for _, task := range tasks {
		assert.Equal(t, 1, seen[task.Title], "task %s must be in exactly one bucket", task.Title)
	}
}

func TestGroupByDue_AllBucketsPresentEvenWhenEmpty(t *testing.T) {
	groups := planner.GroupByDue(nil, now)

	require.Len(t, groups, len(planner.BucketOrder))
	for i, name := range planner.BucketOrder {
		assert.Equal(t, name, groups[i].Name)
		assert.Empty(t, groups[i].Tasks)
	}
}

func TestGroupByDue_SortsByPriorityStably(t *testing.T) {
	tasks := []*entities.Task{
		newTask("low first", entities.PriorityLow, dueOn(2024, 6, 10), false),
		newTask("medium a", entities.PriorityMedium, dueOn(2024, 6, 10), false),
		newTask("high", entities.PriorityHigh, dueOn(2024, 6, 10), false),
		newTask("medium b", entities.PriorityMedium, dueOn(2024, 6, 10), false),
	}

	groups := planner.GroupByDue(tasks, now)
	today := groups.Get(planner.BucketToday)
	require.Len(t, today, 4)

	for i := 1; i < len(today); i++ {
		assert.LessOrEqual(t, today[i-1].Priority.Rank(), today[i].Priority.Rank())
	}

	// Equal priorities keep encounter order.
	assert.Equal(t, "medium a", today[1].Title)
	assert.Equal(t, "medium b", today[2].Title)
}

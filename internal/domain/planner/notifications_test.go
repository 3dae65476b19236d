package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
)

func dueIn(d time.Duration) *time.Time {
	due := now.Add(d)
	return &due
}

func TestDeriveNotifications_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		due      *time.Time
		wantType entities.NotificationType
		wantMsg  string
	}{
		{
			name:     "two hours overdue",
			due:      dueIn(-2 * time.Hour),
			wantType: entities.NotificationError,
			wantMsg:  `Task "report" is overdue!`,
		},
		{
			name:     "due in twenty hours",
			due:      dueIn(20 * time.Hour),
			wantType: entities.NotificationWarning,
			wantMsg:  `Task "report" is due within 24 hours!`,
		},
		{
			name:     "due in two and a half days rounds up",
			due:      dueIn(60 * time.Hour),
			wantType: entities.NotificationInfo,
			wantMsg:  `Task "report" is due in 3 days`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTask("report", entities.PriorityHigh, tt.due, false)
			notifications := planner.DeriveNotifications([]*entities.Task{task}, now)

			require.Len(t, notifications, 1)
			assert.Equal(t, tt.wantType, notifications[0].Type)
			assert.Equal(t, tt.wantMsg, notifications[0].Message)
			require.NotNil(t, notifications[0].RelatedID)
			assert.Equal(t, task.ID, *notifications[0].RelatedID)
			assert.NotEmpty(t, notifications[0].ID)
		})
	}
}

func TestDeriveNotifications_QuietCases(t *testing.T) {
	tasks := []*entities.Task{
		newTask("far away", entities.PriorityLow, dueIn(5*24*time.Hour), false),
		newTask("no due date", entities.PriorityHigh, nil, false),
		newTask("completed and overdue", entities.PriorityHigh, dueIn(-48*time.Hour), true),
	}

	notifications := planner.DeriveNotifications(tasks, now)
	assert.Empty(t, notifications)
}

func TestDeriveNotifications_FollowsInputOrder(t *testing.T) {
	tasks := []*entities.Task{
		newTask("first", entities.PriorityLow, dueIn(-time.Hour), false),
		newTask("second", entities.PriorityHigh, dueIn(12*time.Hour), false),
		newTask("third", entities.PriorityMedium, dueIn(50*time.Hour), false),
	}

	notifications := planner.DeriveNotifications(tasks, now)

	require.Len(t, notifications, 3)
	assert.Equal(t, entities.NotificationError, notifications[0].Type)
	assert.Equal(t, entities.NotificationWarning, notifications[1].Type)
	assert.Equal(t, entities.NotificationInfo, notifications[2].Type)
}

func TestDeriveNotifications_Idempotent(t *testing.T) {
	tasks := []*entities.Task{
		newTask("a", entities.PriorityLow, dueIn(-time.Hour), false),
		newTask("b", entities.PriorityHigh, dueIn(2*time.Hour), false),
		newTask("c", entities.PriorityMedium, dueIn(70*time.Hour), false),
	}

	first := planner.DeriveNotifications(tasks, now)
	second := planner.DeriveNotifications(tasks, now)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Message, second[i].Message)
		assert.Equal(t, first[i].Type, second[i].Type)
		assert.Equal(t, first[i].RelatedID, second[i].RelatedID)
	}
}

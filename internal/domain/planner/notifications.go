package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
)

// DeriveNotifications projects due-date proximity onto transient
// notifications. The output is a total recomputation in input order: nothing
// is persisted, deduplicated, or dismissed, and calling it twice with the
// same inputs yields an equivalent list (only the generated ids differ).
func DeriveNotifications(tasks []*entities.Task, now time.Time) []entities.Notification {
	notifications := make([]entities.Notification, 0)

	for _, task := range tasks {
		if task.DueDate == nil || task.Completed {
			continue
		}

		id := task.ID
		daysDiff := task.DueDate.Sub(now).Hours() / 24

		switch {
		case daysDiff < 0:
			notifications = append(notifications, entities.Notification{
				ID:        uuid.NewString(),
				Title:     "Overdue Task",
				Message:   fmt.Sprintf("Task %q is overdue!", task.Title),
				Type:      entities.NotificationError,
				RelatedID: &id,
			})
		case daysDiff <= 1:
			notifications = append(notifications, entities.Notification{
				ID:        uuid.NewString(),
				Title:     "Due Soon",
				Message:   fmt.Sprintf("Task %q is due within 24 hours!", task.Title),
				Type:      entities.NotificationWarning,
				RelatedID: &id,
			})
		case daysDiff <= 3:
			notifications = append(notifications, entities.Notification{
				ID:        uuid.NewString(),
				Title:     "Upcoming",
				Message:   fmt.Sprintf("Task %q is due in %d days", task.Title, int(math.Ceil(daysDiff))),
				Type:      entities.NotificationInfo,
				RelatedID: &id,
			})
		}
	}

	return notifications
}

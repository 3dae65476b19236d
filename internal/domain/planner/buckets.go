package planner

import (
	"sort"
	"time"

	"github.com/lifeboard/core/internal/domain/entities"
)

// Bucket names, in presentation order.
const (
	BucketOverdue   = "Overdue"
	BucketToday     = "Today"
	BucketTomorrow  = "Tomorrow"
	BucketThisWeek  = "This Week"
	BucketUpcoming  = "Upcoming"
	BucketCompleted = "Completed"
)

// BucketOrder lists every bucket in the order views render them.
var BucketOrder = []string{
	BucketOverdue,
	BucketToday,
	BucketTomorrow,
	BucketThisWeek,
	BucketUpcoming,
	BucketCompleted,
}

// Group is one labeled time bucket of tasks.
type Group struct {
	Name  string           `json:"name"`
	Tasks []*entities.Task `json:"tasks"`
}

// Groups always holds all six buckets in BucketOrder; empty buckets stay in
// the result so callers can tell empty from absent.
type Groups []Group

// Get returns the tasks of the named bucket, or nil if the name is unknown.
func (g Groups) Get(name string) []*entities.Task {
	for _, group := range g {
		if group.Name == name {
			return group.Tasks
		}
	}
	return nil
}

// GroupByDue partitions tasks into time buckets relative to now, at
// calendar-day granularity, then orders each bucket by priority (high
// first). The sort is stable: ties keep encounter order.
//
// Completed tasks always land in Completed; open tasks without a due date
// land in Upcoming. "Tomorrow" means exactly one calendar day ahead,
// including across month and year boundaries.
func GroupByDue(tasks []*entities.Task, now time.Time) Groups {
	buckets := make(map[string][]*entities.Task, len(BucketOrder))

	for _, task := range tasks {
		name := bucketFor(task, now)
		buckets[name] = append(buckets[name], task)
	}

	groups := make(Groups, 0, len(BucketOrder))
	for _, name := range BucketOrder {
		bucket := buckets[name]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Priority.Rank() < bucket[j].Priority.Rank()
		})
		groups = append(groups, Group{Name: name, Tasks: bucket})
	}
	return groups
}

func bucketFor(task *entities.Task, now time.Time) string {
	if task.Completed {
		return BucketCompleted
	}
	if task.DueDate == nil {
		return BucketUpcoming
	}

	switch days := daysBetween(now, *task.DueDate); {
	case days < 0:
		return BucketOverdue
	case days == 0:
		return BucketToday
	case days == 1:
		return BucketTomorrow
	case sameWeek(*task.DueDate, now):
		return BucketThisWeek
	default:
		return BucketUpcoming
	}
}

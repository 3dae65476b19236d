package planner

import "time"

// dayOf collapses an instant to its calendar day. Day arithmetic is done on
// a fixed-offset copy so it is immune to DST transitions.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the calendar-day distance from a to b. Negative when b
// is on an earlier day than a. Rolls correctly across month and year
// boundaries.
func daysBetween(a, b time.Time) int {
	return int(dayOf(b).Sub(dayOf(a)).Hours() / 24)
}

// weekStart returns the Monday that opens the week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dayOf(t).AddDate(0, 0, -offset)
}

// sameWeek reports whether a and b fall in the same Monday-started week.
func sameWeek(a, b time.Time) bool {
	return weekStart(a).Equal(weekStart(b))
}

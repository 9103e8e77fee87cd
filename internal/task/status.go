package task

import (
	"fmt"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
)

// Refresh sets Ongoing when today is the task's weekday.
func (w *WeekTask) Refresh(today calendar.Date) {
	w.Ongoing = w.Weekday == calendar.WeekdayName(today.Weekday())
}

// Refresh sets Ongoing when today is the task's day of month.
func (m *MonthTask) Refresh(today calendar.Date) {
	m.Ongoing = m.Day == today.Day()
}

// Refresh classifies the task's date relative to today.
func (o *OnceTask) Refresh(today calendar.Date) {
	switch c := o.Date.Compare(today); {
	case c == 0:
		o.Status = Ongoing
	case c < 0:
		o.Status = Expired
	default:
		o.Status = Upcoming
	}
}

// Refresh is a no-op: progress bookmarks have no temporal status.
func (*ProgressTask) Refresh(calendar.Date) {}

// RefreshAll recomputes the derived status of every task from cal.
func RefreshAll(tasks []*Task, cal calendar.Calendar) {
	today := calendar.Today(cal)
	for _, t := range tasks {
		t.Content.Refresh(today)
	}
}

// IsOngoing reports whether the variant is relevant today.
func IsOngoing(v Variant) bool {
	switch v := v.(type) {
	case *WeekTask:
		return v.Ongoing
	case *MonthTask:
		return v.Ongoing
	case *OnceTask:
		return v.Status == Ongoing
	default:
		return false
	}
}

// IsExpired reports whether the variant is a OnceTask whose date has passed.
func IsExpired(v Variant) bool {
	o, ok := v.(*OnceTask)
	return ok && o.Status == Expired
}

// ExpiryWarning returns the message shown when a task is created already
// expired, or "" when there is nothing to warn about.
func ExpiryWarning(v Variant) string {
	o, ok := v.(*OnceTask)
	if !ok || o.Status != Expired {
		return ""
	}
	return fmt.Sprintf("the date %s has already passed; this task is expired", o.Date)
}

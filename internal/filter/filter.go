// Package filter partitions task lists by variant and derived status.
package filter

import (
	"strings"

	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

// Selector names a subset of tasks for list and bulk-remove operations.
type Selector string

// Recognized selectors.
const (
	All      Selector = "all"
	Expired  Selector = "expired"
	Once     Selector = "once"
	Month    Selector = "month"
	Week     Selector = "week"
	Progress Selector = "progress"
	Ongoing  Selector = "ongoing"
)

// Predicate reports whether a task belongs to a selection.
type Predicate func(*task.Task) bool

// Selectors returns every recognized selector name.
func Selectors() []Selector {
	return []Selector{All, Expired, Once, Month, Week, Progress, Ongoing}
}

// longNames are the descriptive selector names accepted alongside the short ones.
var longNames = map[string]Selector{
	"no-filter":         All,
	"expired-once-only": Expired,
	"all-once":          Once,
	"all-month":         Month,
	"all-week":          Week,
	"all-progress":      Progress,
}

// ParseSelector maps a name to its Selector. Unrecognized names fall back to
// All, so a bad filter lists everything instead of failing.
func ParseSelector(name string) Selector {
	s, _ := LookupSelector(name)
	return s
}

// LookupSelector is ParseSelector that also reports whether name was
// recognized.
func LookupSelector(name string) (Selector, bool) {
	in := strings.ToLower(strings.TrimSpace(name))
	if s := Selector(in); s.Valid() {
		return s, true
	}
	if s, ok := longNames[in]; ok {
		return s, true
	}
	return All, false
}

// Valid reports whether s is a recognized selector.
func (s Selector) Valid() bool {
	for _, known := range Selectors() {
		if s == known {
			return true
		}
	}
	return false
}

// Predicate returns the membership test for s.
func (s Selector) Predicate() Predicate {
	switch s {
	case Expired:
		return func(t *task.Task) bool { return task.IsExpired(t.Content) }
	case Once:
		return ofKind(task.KindOnce)
	case Month:
		return ofKind(task.KindMonth)
	case Week:
		return ofKind(task.KindWeek)
	case Progress:
		return ofKind(task.KindProgress)
	case Ongoing:
		return func(t *task.Task) bool { return task.IsOngoing(t.Content) }
	default:
		return func(*task.Task) bool { return true }
	}
}

func ofKind(k task.Kind) Predicate {
	return func(t *task.Task) bool { return t.Kind() == k }
}

// Partition splits tasks into those matching pred and the rest, preserving
// relative order in both. Neither result aliases the input slice.
func Partition(tasks []*task.Task, pred Predicate) (selected, other []*task.Task) {
	selected = []*task.Task{}
	other = []*task.Task{}
	for _, t := range tasks {
		if pred(t) {
			selected = append(selected, t)
		} else {
			other = append(other, t)
		}
	}
	return selected, other
}

// Select returns the tasks matching s, in order.
func Select(tasks []*task.Task, s Selector) []*task.Task {
	selected, _ := Partition(tasks, s.Predicate())
	return selected
}

// Resequence renumbers tasks 1..N in their current order.
func Resequence(tasks []*task.Task) {
	for i, t := range tasks {
		t.ID = i + 1
	}
}

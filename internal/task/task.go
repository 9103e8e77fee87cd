// Package task defines the task model: a Task wraps exactly one Variant
// (weekly, monthly, one-time or progress bookmark) whose derived status is
// recomputed from the calendar on every load.
package task

import (
	"time"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
)

// CreatedAtLayout is the layout of Task.CreatedAt.
const CreatedAtLayout = "2006-01-02 15:04:05"

// Kind names a variant. The value doubles as its JSON tag.
type Kind string

// Variant kinds.
const (
	KindWeek     Kind = "WeekTask"
	KindMonth    Kind = "MonthTask"
	KindOnce     Kind = "OnceTask"
	KindProgress Kind = "ProgressTask"
)

// Short returns the lowercase display name of the kind ("week", "month", ...).
func (k Kind) Short() string {
	switch k {
	case KindWeek:
		return "week"
	case KindMonth:
		return "month"
	case KindOnce:
		return "once"
	case KindProgress:
		return "progress"
	default:
		return string(k)
	}
}

// Kinds lists every variant kind in display order.
func Kinds() []Kind {
	return []Kind{KindWeek, KindMonth, KindOnce, KindProgress}
}

// Status is the derived temporal state of a OnceTask.
type Status string

// OnceTask statuses.
const (
	Expired  Status = "Expired"
	Upcoming Status = "Upcoming"
	Ongoing  Status = "Ongoing"
)

// Variant is the closed set of task payloads: *WeekTask, *MonthTask,
// *OnceTask and *ProgressTask.
type Variant interface {
	Kind() Kind
	// Refresh recomputes derived status fields for the given day.
	Refresh(today calendar.Date)
	variant()
}

// Task is one persisted entry.
type Task struct {
	ID        int     `json:"id"`
	CreatedAt string  `json:"created_at"`
	Content   Variant `json:"content"`
}

// New creates an unnumbered task stamped with the given creation time.
func New(v Variant, created time.Time) *Task {
	return &Task{CreatedAt: created.Format(CreatedAtLayout), Content: v}
}

// Kind returns the kind of the task's variant.
func (t *Task) Kind() Kind { return t.Content.Kind() }

// WeekTask recurs on one weekday.
type WeekTask struct {
	Text    string `json:"text"`
	Weekday string `json:"weekday"`
	Ongoing bool   `json:"ongoing"`
}

// MonthTask recurs on one day of the month.
type MonthTask struct {
	Text    string `json:"text"`
	Day     int    `json:"day"`
	Ongoing bool   `json:"ongoing"`
}

// OnceTask is due on a single date.
type OnceTask struct {
	Text   string        `json:"text"`
	Date   calendar.Date `json:"date"`
	Status Status        `json:"status"`
}

// ProgressTask is a bookmark with free-form progress text and no temporal status.
type ProgressTask struct {
	Text     string `json:"text"`
	Progress string `json:"progress"`
}

func (*WeekTask) Kind() Kind     { return KindWeek }
func (*MonthTask) Kind() Kind    { return KindMonth }
func (*OnceTask) Kind() Kind     { return KindOnce }
func (*ProgressTask) Kind() Kind { return KindProgress }

func (*WeekTask) variant()     {}
func (*MonthTask) variant()    {}
func (*OnceTask) variant()     {}
func (*ProgressTask) variant() {}

// TextOf returns the user text of any variant.
func TextOf(v Variant) string {
	switch v := v.(type) {
	case *WeekTask:
		return v.Text
	case *MonthTask:
		return v.Text
	case *OnceTask:
		return v.Text
	case *ProgressTask:
		return v.Text
	default:
		return ""
	}
}

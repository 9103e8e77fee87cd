package task

import (
	"strconv"
	"strings"
)

// State labels used by Record.State.
const (
	StateOngoing  = "ongoing"
	StateExpired  = "expired"
	StateUpcoming = "upcoming"
	StateIdle     = ""
)

// Record is a presentation-neutral view of a task. Renderers add styling.
type Record struct {
	ID        int    `json:"id"`
	CreatedAt string `json:"created_at"`
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Schedule  string `json:"schedule"`
	State     string `json:"state,omitempty"`
}

// Describe maps a task to its Record.
func Describe(t *Task) Record {
	r := Record{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Kind:      t.Kind().Short(),
		Text:      TextOf(t.Content),
	}

	switch v := t.Content.(type) {
	case *WeekTask:
		r.Schedule = "every " + v.Weekday
		if v.Ongoing {
			r.State = StateOngoing
		}
	case *MonthTask:
		r.Schedule = "monthly on day " + strconv.Itoa(v.Day)
		if v.Ongoing {
			r.State = StateOngoing
		}
	case *OnceTask:
		r.Schedule = "on " + v.Date.String()
		r.State = strings.ToLower(string(v.Status))
	case *ProgressTask:
		r.Schedule = "at " + v.Progress
		if v.Progress == "" {
			r.Schedule = "no progress yet"
		}
	}
	return r
}

// DescribeAll maps every task to its Record, preserving order.
func DescribeAll(tasks []*Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, Describe(t))
	}
	return records
}

// Line renders a record as a single unstyled line, e.g.
// "3: [week] water plants (every Mon) ongoing".
func (r Record) Line() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.ID))
	b.WriteString(": [")
	b.WriteString(r.Kind)
	b.WriteString("] ")
	b.WriteString(r.Text)
	b.WriteString(" (")
	b.WriteString(r.Schedule)
	b.WriteString(")")
	if r.State != StateIdle {
		b.WriteByte(' ')
		b.WriteString(r.State)
	}
	return b.String()
}

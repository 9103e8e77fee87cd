package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
)

// Day-of-month bounds. Month length is deliberately not considered.
const (
	MinDay = 1
	MaxDay = 31
)

// Spec carries the raw user input for a new task. At most one of Weekday,
// Day, Date and Progress is expected to be set.
type Spec struct {
	Text     string
	Weekday  string
	Day      *int
	Date     string
	Progress string
	// Multiple marks input from the multi-line loop, where a line without a
	// selector becomes a plain progress bookmark instead of an error.
	Multiple bool
}

// HasSelector reports whether any variant selector is set.
func (s Spec) HasSelector() bool {
	return s.Weekday != "" || s.Day != nil || s.Date != "" || s.Progress != ""
}

// Build validates s and constructs its variant with status computed for
// today. When several selectors are set the first of weekday, day, date,
// progress wins.
func Build(s Spec, cal calendar.Calendar) (Variant, error) {
	text := strings.TrimSpace(s.Text)
	if text == "" {
		return nil, clierr.New(clierr.InvalidInput, "task text must not be empty")
	}

	var v Variant
	switch {
	case s.Weekday != "":
		wd, err := calendar.CanonicalWeekday(s.Weekday)
		if err != nil {
			return nil, clierr.Wrap(clierr.InvalidWeekday, err, "cannot add task").
				WithDetails(map[string]any{"input": s.Weekday})
		}
		v = &WeekTask{Text: text, Weekday: wd}
	case s.Day != nil:
		if *s.Day < MinDay || *s.Day > MaxDay {
			return nil, clierr.Newf(clierr.InvalidDay,
				"invalid day %d, please enter a day between %d and %d", *s.Day, MinDay, MaxDay).
				WithDetails(map[string]any{"input": *s.Day})
		}
		v = &MonthTask{Text: text, Day: *s.Day}
	case s.Date != "":
		d, err := calendar.Parse(strings.TrimSpace(s.Date))
		if err != nil {
			return nil, clierr.Wrap(clierr.InvalidDate, err, "cannot add task").
				WithDetails(map[string]any{"input": s.Date})
		}
		v = &OnceTask{Text: text, Date: d}
	case s.Progress != "":
		v = &ProgressTask{Text: text, Progress: s.Progress}
	case s.Multiple:
		v = &ProgressTask{Text: text}
	default:
		return nil, clierr.New(clierr.MissingVariant,
			"specify one of --weekday, --day, --date or --progress")
	}

	v.Refresh(calendar.Today(cal))
	return v, nil
}

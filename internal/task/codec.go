package task

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
)

// errMalformed is wrapped by every decode failure of a task's content.
var errMalformed = errors.New("malformed task content")

type taskJSON struct {
	ID        int                      `json:"id"`
	CreatedAt string                   `json:"created_at"`
	Content   map[Kind]json.RawMessage `json:"content"`
}

// MarshalJSON encodes the variant under a single key naming its kind.
func (t *Task) MarshalJSON() ([]byte, error) {
	if t.Content == nil {
		return nil, fmt.Errorf("task #%d: %w: no content", t.ID, errMalformed)
	}
	body, err := json.Marshal(t.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(taskJSON{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Content:   map[Kind]json.RawMessage{t.Content.Kind(): body},
	})
}

// UnmarshalJSON decodes a task, rejecting unknown or ambiguous variant tags.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Content) != 1 {
		return fmt.Errorf("task #%d: %w: expected exactly one variant, got %d", raw.ID, errMalformed, len(raw.Content))
	}

	var v Variant
	for kind, body := range raw.Content {
		decoded, err := decodeVariant(kind, body)
		if err != nil {
			return fmt.Errorf("task #%d: %w", raw.ID, err)
		}
		v = decoded
	}

	t.ID = raw.ID
	t.CreatedAt = raw.CreatedAt
	t.Content = v
	return nil
}

func decodeVariant(kind Kind, body json.RawMessage) (Variant, error) {
	switch kind {
	case KindWeek:
		var w WeekTask
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, err
		}
		wd, err := calendar.CanonicalWeekday(w.Weekday)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errMalformed, err)
		}
		w.Weekday = wd
		return &w, nil
	case KindMonth:
		var m MonthTask
		if err := json.Unmarshal(body, &m); err != nil {
			return nil, err
		}
		if m.Day < MinDay || m.Day > MaxDay {
			return nil, fmt.Errorf("%w: day %d out of range", errMalformed, m.Day)
		}
		return &m, nil
	case KindOnce:
		// Status is derived and recomputed after load, so only the
		// fields that carry meaning are decoded.
		var o struct {
			Text string        `json:"text"`
			Date calendar.Date `json:"date"`
		}
		if err := json.Unmarshal(body, &o); err != nil {
			return nil, err
		}
		if o.Date.IsZero() {
			return nil, fmt.Errorf("%w: once task without date", errMalformed)
		}
		return &OnceTask{Text: o.Text, Date: o.Date}, nil
	case KindProgress:
		var p ProgressTask
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, err
		}
		return &p, nil
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", errMalformed, kind)
	}
}

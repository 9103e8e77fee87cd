// Package calendar answers "what is today" and parses user-supplied dates
// and weekdays. Dates marshal as YYYYMMDD.
package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const format = "20060102"

// ErrInvalidDate is returned by Parse for input that is not a YYYYMMDD date.
var ErrInvalidDate = errors.New("invalid date, please enter a valid date (e.g. 20240402)")

// Date represents a calendar date without time or timezone.
type Date struct {
	time.Time
}

// New creates a Date from year, month, day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates t to its calendar date in t's own location.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse parses a YYYYMMDD string into a Date.
func Parse(s string) (Date, error) {
	if len(s) != len(format) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(format, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t}, nil
}

// String returns the date as YYYYMMDD.
func (d Date) String() string {
	return d.Format(format)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after other.
func (d Date) Compare(other Date) int {
	return d.Time.Compare(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

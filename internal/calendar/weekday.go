package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidWeekday is returned by ParseWeekday for unrecognized names.
var ErrInvalidWeekday = errors.New("invalid weekday, please enter a valid weekday (e.g. Mon, tue, etc.)")

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseWeekday accepts a three-letter or full English weekday name in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in != "" {
		for i, short := range weekdayNames {
			wd := time.Weekday(i)
			if in == strings.ToLower(short) || in == strings.ToLower(wd.String()) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayName returns the canonical three-letter name of wd, e.g. "Mon".
func WeekdayName(wd time.Weekday) string {
	return weekdayNames[wd%7] //nolint:mnd // days per week
}

// CanonicalWeekday parses s and returns its canonical three-letter name.
func CanonicalWeekday(s string) (string, error) {
	wd, err := ParseWeekday(s)
	if err != nil {
		return "", err
	}
	return WeekdayName(wd), nil
}

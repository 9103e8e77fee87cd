package calendar

import "time"

// Calendar supplies the current wall-clock time. Everything the task model
// needs to know about "today" is derived from it.
type Calendar interface {
	Now() time.Time
}

// Clock adapts a time source to Calendar.
type Clock func() time.Time

// Now implements Calendar.
func (c Clock) Now() time.Time { return c() }

// System is the calendar backed by the local wall clock.
var System Calendar = Clock(time.Now)

// Fixed returns a calendar frozen at the given instant.
func Fixed(t time.Time) Calendar {
	return Clock(func() time.Time { return t })
}

// Today returns the current date of c.
func Today(c Calendar) Date {
	return Of(c.Now())
}

// Greeting returns a salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12: //nolint:mnd // noon
		return "Good morning!"
	case h < 17: //nolint:mnd // 5pm
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}

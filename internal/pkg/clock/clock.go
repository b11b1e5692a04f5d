package clock

import "time"

// Clock supplies the current time to services so that date-sensitive rules
// (one record per day, past-date checks, checkout locks) stay testable.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Today returns the current calendar date, truncated to local midnight.
	Today() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Today() time.Time {
	return Midnight(c.Now())
}

// Midnight truncates t to midnight in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Fixed is a clock pinned to a single instant, used in tests.
type Fixed struct {
	Time time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{Time: t}
}

func (f *Fixed) Now() time.Time {
	return f.Time
}

func (f *Fixed) Today() time.Time {
	return Midnight(f.Time)
}

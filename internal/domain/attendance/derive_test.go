package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) *time.Time {
	t := time.Date(2024, 1, 20, hour, min, 0, 0, time.UTC)
	return &t
}

func tsAdd(base *time.Time, d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

func TestDerive_MissingClockSide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		clockIn  *time.Time
		clockOut *time.Time
	}{
		{"no timestamps", nil, nil},
		{"clock-in only", ts(9, 0), nil},
		{"clock-out only", nil, ts(17, 0)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Derive(c.clockIn, c.clockOut, nil, nil)
			assert.Zero(t, d.TotalHours)
			assert.Zero(t, d.OvertimeHours)
			assert.False(t, d.StatusDerived)
		})
	}
}

func TestDerive_HoursAndOvertime(t *testing.T) {
	t.Parallel()

	// 9:00 to 18:30, no break: 9.5 hours, 1.5 overtime
	d := Derive(ts(9, 0), ts(18, 30), nil, nil)
	assert.InDelta(t, 9.5, d.TotalHours, 1e-9)
	assert.InDelta(t, 1.5, d.OvertimeHours, 1e-9)
	assert.Equal(t, StatusPresent, d.Status)
	assert.True(t, d.StatusDerived)

	// Exactly 8 hours: no overtime
	d = Derive(ts(9, 0), ts(17, 0), nil, nil)
	assert.InDelta(t, 8.0, d.TotalHours, 1e-9)
	assert.Zero(t, d.OvertimeHours)
	assert.Equal(t, StatusPresent, d.Status)
}

func TestDerive_BreakSubtraction(t *testing.T) {
	t.Parallel()

	// 9:00 to 18:00 with a one-hour break: 8 hours
	d := Derive(ts(9, 0), ts(18, 0), ts(12, 0), ts(13, 0))
	assert.InDelta(t, 8.0, d.TotalHours, 1e-9)
	assert.Equal(t, StatusPresent, d.Status)

	// One-sided break pair has zero effect
	withStartOnly := Derive(ts(9, 0), ts(18, 0), ts(12, 0), nil)
	withEndOnly := Derive(ts(9, 0), ts(18, 0), nil, ts(13, 0))
	noBreak := Derive(ts(9, 0), ts(18, 0), nil, nil)
	assert.Equal(t, noBreak.TotalHours, withStartOnly.TotalHours)
	assert.Equal(t, noBreak.TotalHours, withEndOnly.TotalHours)
}

func TestDerive_NegativeSpansClampToZero(t *testing.T) {
	t.Parallel()

	// Clock-out before clock-in
	d := Derive(ts(17, 0), ts(9, 0), nil, nil)
	assert.Zero(t, d.TotalHours)
	assert.Zero(t, d.OvertimeHours)
	assert.False(t, d.StatusDerived)

	// Break longer than the worked span
	d = Derive(ts(9, 0), ts(10, 0), ts(9, 0), ts(12, 0))
	assert.Zero(t, d.TotalHours)
	assert.False(t, d.StatusDerived)
}

func TestDerive_StatusBoundaries(t *testing.T) {
	t.Parallel()

	start := ts(9, 0)
	cases := []struct {
		name    string
		worked  time.Duration
		status  Status
		derived bool
	}{
		{"8.0h is present", 8 * time.Hour, StatusPresent, true},
		{"just under 8h is half day", 8*time.Hour - time.Second, StatusHalfDay, true},
		{"4.0h is half day", 4 * time.Hour, StatusHalfDay, true},
		{"just under 4h is late", 4*time.Hour - time.Second, StatusLate, true},
		{"zero hours leaves status alone", 0, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Derive(start, tsAdd(start, c.worked), nil, nil)
			assert.Equal(t, c.derived, d.StatusDerived)
			if c.derived {
				assert.Equal(t, c.status, d.Status)
			}
		})
	}
}

func TestDerived_Apply(t *testing.T) {
	t.Parallel()

	att := Attendance{Status: StatusAbsent}
	Derive(nil, nil, nil, nil).Apply(&att)
	assert.Equal(t, StatusAbsent, att.Status, "caller-supplied status must survive when nothing is derived")

	Derive(ts(9, 0), ts(17, 0), nil, nil).Apply(&att)
	assert.Equal(t, StatusPresent, att.Status)
	assert.InDelta(t, 8.0, att.TotalHours, 1e-9)
}

func TestRoundHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8.13, RoundHours(8.125), "half rounds up")
	assert.Equal(t, 8.0, RoundHours(8.0))
	assert.Equal(t, 7.68, RoundHours(7.6789))
	assert.Equal(t, 1.23, RoundHours(1.234))
}

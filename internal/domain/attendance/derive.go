package attendance

import (
	"math"
	"time"
)

// Thresholds for status derivation, in hours. Fixed policy, not tunables.
const (
	FullDayHours = 8.0
	HalfDayHours = 4.0
)

// Derived holds the fields recomputed from the clock timestamps.
// StatusDerived is false when the hours worked give no signal (either clock
// side missing, or zero hours) and the caller-supplied status must stand.
type Derived struct {
	TotalHours    float64
	OvertimeHours float64
	Status        Status
	StatusDerived bool
}

// Derive recomputes worked hours, overtime and status from the clock and
// break timestamps. It is pure: no clock reads, no error cases. A break pair
// with only one side present is ignored rather than partially applied, and
// malformed (negative) spans clamp to zero.
func Derive(clockIn, clockOut, breakStart, breakEnd *time.Time) Derived {
	if clockIn == nil || clockOut == nil {
		return Derived{}
	}

	worked := clockOut.Sub(*clockIn)
	if breakStart != nil && breakEnd != nil {
		worked -= breakEnd.Sub(*breakStart)
	}
	if worked < 0 {
		worked = 0
	}

	d := Derived{TotalHours: worked.Hours()}
	if over := d.TotalHours - FullDayHours; over > 0 {
		d.OvertimeHours = over
	}

	switch {
	case d.TotalHours >= FullDayHours:
		d.Status, d.StatusDerived = StatusPresent, true
	case d.TotalHours >= HalfDayHours:
		d.Status, d.StatusDerived = StatusHalfDay, true
	case d.TotalHours > 0:
		d.Status, d.StatusDerived = StatusLate, true
	}

	return d
}

// Apply writes the derived fields onto the record, keeping the existing
// status when derivation produced none.
func (d Derived) Apply(att *Attendance) {
	att.TotalHours = d.TotalHours
	att.OvertimeHours = d.OvertimeHours
	if d.StatusDerived {
		att.Status = d.Status
	}
}

// RoundHours rounds to 2 decimal places, half-up. Display only; stored
// derived hours keep full precision.
func RoundHours(hours float64) float64 {
	return math.Floor(hours*100+0.5) / 100
}

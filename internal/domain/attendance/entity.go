package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusHoliday Status = "holiday"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusHoliday:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar day. Date is the
// working day truncated to midnight; the unique key is (employee, date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	ClockIn    *time.Time
	ClockOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time

	// Derived on every write that carries both clock timestamps.
	TotalHours    float64
	OvertimeHours float64
	Status        Status

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}

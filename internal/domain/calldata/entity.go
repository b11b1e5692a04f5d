package calldata

import "time"

// CallData is one employee's call-center counters for one calendar day.
// Unique key is (employee, date); PerformanceScore is derived on every save.
type CallData struct {
	ID         string
	EmployeeID string
	Date       time.Time

	TotalCalls         int
	TotalCallTime      float64 // minutes
	InterestedStudents int
	VisitedToday       int

	PerformanceScore float64
	Notes            *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}

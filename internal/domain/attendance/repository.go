package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// guarantees a unique key on (employee, date) and surfaces violations as
// ErrDuplicateAttendance.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific date, nil when none exists. Used to prevent double clock-in
	// and for the call-data checkout lock.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}

package attendance

import "context"

// AttendanceService is the lifecycle coordinator for attendance records. It
// enforces the one-record-per-day and clock-state rules, then lets Derive
// recompute hours and status before each persist.
type AttendanceService interface {
	// ClockIn opens today's record for the acting employee
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's record and derives hours, overtime and status
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// StartBreak stamps the break start on today's open record
	StartBreak(ctx context.Context) (AttendanceResponse, error)

	// EndBreak stamps the break end on today's open record
	EndBreak(ctx context.Context) (AttendanceResponse, error)

	// Create is the admin manual-entry path
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// Update edits a record (admin), rederiving the computed fields
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// Get retrieves a single record by ID
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the acting employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// List retrieves records with filters (admin)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Delete removes a record (admin)
	Delete(ctx context.Context, id string) error
}

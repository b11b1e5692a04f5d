package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Clock-in / clock-out errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// Break errors
	ErrBreakAlreadyStarted = errors.New("break has already been started")
	ErrBreakNotStarted     = errors.New("break has not been started")
	ErrBreakAlreadyEnded   = errors.New("break has already been ended")

	// General errors
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee and date")
	ErrUnauthorized        = errors.New("unauthorized to access this attendance record")
)

// ClockConflictError carries the existing record's sub-state so the client
// can show "already clocked in" with clock-in/out details.
type ClockConflictError struct {
	Existing Attendance
}

func (e *ClockConflictError) Error() string {
	if e.Existing.ClockOut != nil {
		return fmt.Sprintf("already clocked in on %s and clocked out", e.Existing.Date.Format("2006-01-02"))
	}
	return fmt.Sprintf("already clocked in on %s", e.Existing.Date.Format("2006-01-02"))
}

func (e *ClockConflictError) Unwrap() error {
	return ErrAlreadyClockedIn
}

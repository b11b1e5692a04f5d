package response

import (
	"errors"
	"net/http"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/holiday"
	"github.com/stafflow/hr-backend-go/internal/domain/leave"
	"github.com/stafflow/hr-backend-go/internal/domain/payslip"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A duplicate clock-in reports the existing record's state
	var clockConflict *attendance.ClockConflictError
	if errors.As(err, &clockConflict) {
		details := map[string]string{
			"date": clockConflict.Existing.Date.Format("2006-01-02"),
		}
		if clockConflict.Existing.ClockIn != nil {
			details["clock_in"] = clockConflict.Existing.ClockIn.Format("2006-01-02 15:04:05")
		}
		if clockConflict.Existing.ClockOut != nil {
			details["clock_out"] = clockConflict.Existing.ClockOut.Format("2006-01-02 15:04:05")
		}
		ConflictWithDetails(w, clockConflict.Error(), details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google sign-in is not configured", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrBreakAlreadyStarted),
		errors.Is(err, attendance.ErrBreakNotStarted),
		errors.Is(err, attendance.ErrBreakAlreadyEnded):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrPastDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, leave.ErrCancelNotAllowed),
		errors.Is(err, leave.ErrEditNotAllowed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Call data domain errors
	case errors.Is(err, calldata.ErrCallDataNotFound):
		NotFound(w, "Call data record not found")
	case errors.Is(err, calldata.ErrDuplicateCallData):
		Conflict(w, err.Error())
	// Editing after checkout is an authorization failure, not a conflict:
	// the record exists, the actor just may no longer touch it.
	case errors.Is(err, calldata.ErrCheckedOut),
		errors.Is(err, calldata.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, err.Error())

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrDuplicatePayslip):
		Conflict(w, err.Error())
	case errors.Is(err, payslip.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package attendance

import (
	"github.com/stafflow/hr-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateAttendanceRequest is the admin manual-entry path. It bypasses the
// clock-in flow but stays subject to the unique (employee, date) key.
type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	for field, value := range map[string]*string{
		"clock_in":    r.ClockIn,
		"clock_out":   r.ClockOut,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be an ISO8601 timestamp",
			})
		}
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, late, half_day, holiday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID         string  `json:"-"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	for field, value := range map[string]*string{
		"clock_in":    r.ClockIn,
		"clock_out":   r.ClockOut,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be an ISO8601 timestamp",
			})
		}
	}

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, late, half_day, holiday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Status     string
	Page       int
	Limit      int
}

type MyAttendanceFilter struct {
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

type AttendanceResponse struct {
	ID            string  `json:"attendance_id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	ClockIn       *string `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
	BreakStart    *string `json:"break_start"`
	BreakEnd      *string `json:"break_end"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

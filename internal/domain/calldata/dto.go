package calldata

import (
	"github.com/stafflow/hr-backend-go/internal/pkg/validator"
)

// SubmitCallDataRequest upserts the daily record: find-or-create by
// (employee, date).
type SubmitCallDataRequest struct {
	// EmployeeID is honored only for admins editing on behalf of another
	// employee; regular employees always submit their own record.
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"` // defaults to today

	TotalCalls         int     `json:"total_calls"`
	TotalCallTime      float64 `json:"total_call_time"`
	InterestedStudents int     `json:"interested_students"`
	VisitedToday       int     `json:"visited_today"`
	Notes              *string `json:"notes,omitempty"`
}

func (r *SubmitCallDataRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.TotalCalls < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_calls",
			Message: "total_calls must not be negative",
		})
	}
	if r.TotalCallTime < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_call_time",
			Message: "total_call_time must not be negative",
		})
	}
	if r.InterestedStudents < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "interested_students",
			Message: "interested_students must not be negative",
		})
	}
	if r.VisitedToday < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "visited_today",
			Message: "visited_today must not be negative",
		})
	}

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

type CallDataFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type MyCallDataFilter struct {
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

type CallDataResponse struct {
	ID                 string  `json:"call_data_id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name,omitempty"`
	Date               string  `json:"date"`
	TotalCalls         int     `json:"total_calls"`
	TotalCallTime      float64 `json:"total_call_time"`
	InterestedStudents int     `json:"interested_students"`
	VisitedToday       int     `json:"visited_today"`
	PerformanceScore   float64 `json:"performance_score"`
	Notes              *string `json:"notes,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

type ListCallDataResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Records    []CallDataResponse `json:"call_data"`
}

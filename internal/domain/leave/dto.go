package leave

import (
	"github.com/stafflow/hr-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	// EmployeeID is set by admins filing on behalf of an employee; regular
	// employees always file for themselves.
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	IsHalfDay  bool    `json:"is_half_day"`
	Reason     string  `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, casual, maternity, unpaid",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLeaveRequestRequest edits a pending request's dates or reason.
type UpdateLeaveRequestRequest struct {
	ID        string  `json:"-"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	IsHalfDay *bool   `json:"is_half_day,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Reason != nil {
		if validator.IsEmpty(*r.Reason) {
			errs = append(errs, validator.ValidationError{
				Field:   "reason",
				Message: "reason must not be empty",
			})
		}
		if len(*r.Reason) > 500 {
			errs = append(errs, validator.ValidationError{
				Field:   "reason",
				Message: "reason must not exceed 500 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequestRequest struct {
	ID     string `json:"-"`
	Reason string `json:"rejection_reason"`
}

func (r *RejectLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveFilter struct {
	EmployeeID string
	Status     string
	Type       string
	Page       int
	Limit      int
}

type MyLeaveFilter struct {
	Status string
	Page   int
	Limit  int
}

type LeaveResponse struct {
	ID              string  `json:"leave_request_id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Type            string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	IsHalfDay       bool    `json:"is_half_day"`
	TotalDays       float64 `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Requests   []LeaveResponse `json:"leave_requests"`
}

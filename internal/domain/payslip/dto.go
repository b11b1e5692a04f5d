package payslip

import (
	"io"

	"github.com/stafflow/hr-backend-go/internal/pkg/validator"
)

type UploadPayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	FileName string    `json:"-"`
	FileSize int64     `json:"-"`
	File     io.Reader `json:"-"`
}

func (r *UploadPayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "payslip file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayslipFilter struct {
	EmployeeID string
	Year       int
	Page       int
	Limit      int
}

type PayslipResponse struct {
	ID           string `json:"payslip_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
	UploadedBy   string `json:"uploaded_by"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type ListPayslipResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Payslips   []PayslipResponse `json:"payslips"`
}

package payslip

import "time"

// Payslip holds the metadata of one uploaded payslip file. Unique key is
// (employee, month, year); the file bytes live in the storage collaborator.
type Payslip struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	FileName string
	FilePath string
	FileSize int64

	UploadedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName *string
}

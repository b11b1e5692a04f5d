package payslip

import "context"

// PayslipRepository defines data access for payslip metadata. The store
// guarantees a unique key on (employee, month, year) and surfaces
// violations as ErrDuplicatePayslip.
type PayslipRepository interface {
	// Create creates a new payslip record
	Create(ctx context.Context, p Payslip) (Payslip, error)

	// GetByID retrieves a payslip by ID
	GetByID(ctx context.Context, id string) (Payslip, error)

	// List retrieves payslips with filters and pagination
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)

	// Delete removes a payslip record
	Delete(ctx context.Context, id string) error
}

package payslip

import (
	"context"
	"io"
)

// PayslipService defines payslip file operations
type PayslipService interface {
	// Upload stores a payslip file and its metadata (admin)
	Upload(ctx context.Context, req UploadPayslipRequest) (PayslipResponse, error)

	// Download opens the stored file; employees may only download their own
	Download(ctx context.Context, id string) (Payslip, io.ReadCloser, error)

	// GetMyPayslips retrieves payslips for the acting employee
	GetMyPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)

	// List retrieves payslips with filters (admin)
	List(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)

	// Delete removes a payslip and its file (admin)
	Delete(ctx context.Context, id string) error
}

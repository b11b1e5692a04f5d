package leave

import "context"

type LeaveRequestRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee retrieves all requests for one employee, used for the
	// overlap check
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// Update updates an existing leave request
	Update(ctx context.Context, req LeaveRequest) error

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)

	// Delete removes a leave request
	Delete(ctx context.Context, id string) error
}

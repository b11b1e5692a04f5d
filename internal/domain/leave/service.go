package leave

import "context"

// LeaveService is the lifecycle coordinator for leave requests: past-date
// and overlap checks before create/update, duration derivation before each
// persist, and the pending-only transition guard.
type LeaveService interface {
	// Create files a new request, initially pending
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveResponse, error)

	// Update edits a pending request, re-running validation and derivation
	Update(ctx context.Context, req UpdateLeaveRequestRequest) (LeaveResponse, error)

	// Approve transitions pending -> approved (admin only)
	Approve(ctx context.Context, id string) (LeaveResponse, error)

	// Reject transitions pending -> rejected with a reason (admin only)
	Reject(ctx context.Context, req RejectLeaveRequestRequest) (LeaveResponse, error)

	// Cancel cancels a request; employees only while pending
	Cancel(ctx context.Context, id string) (LeaveResponse, error)

	// Delete removes a request; employees only while pending
	Delete(ctx context.Context, id string) error

	// Get retrieves a single request by ID
	Get(ctx context.Context, id string) (LeaveResponse, error)

	// GetMyLeave retrieves requests for the acting employee
	GetMyLeave(ctx context.Context, filter MyLeaveFilter) (ListLeaveResponse, error)

	// List retrieves requests with filters (admin)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
}

package calldata

import "context"

// CallDataService is the lifecycle coordinator for call data: upsert by
// (employee, date) with the score recomputed on every save, and the
// after-checkout edit lock for non-admins.
type CallDataService interface {
	// Submit creates or updates the daily record for the target employee
	Submit(ctx context.Context, req SubmitCallDataRequest) (CallDataResponse, error)

	// Get retrieves a single record by ID
	Get(ctx context.Context, id string) (CallDataResponse, error)

	// GetMyCallData retrieves records for the acting employee
	GetMyCallData(ctx context.Context, filter MyCallDataFilter) (ListCallDataResponse, error)

	// List retrieves records with filters (admin)
	List(ctx context.Context, filter CallDataFilter) (ListCallDataResponse, error)

	// Delete removes a record (admin)
	Delete(ctx context.Context, id string) error
}

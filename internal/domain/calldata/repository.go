package calldata

import (
	"context"
	"time"
)

// CallDataRepository defines data access for call data records. The store
// guarantees a unique key on (employee, date) and surfaces violations as
// ErrDuplicateCallData.
type CallDataRepository interface {
	// Create creates a new call data record
	Create(ctx context.Context, cd CallData) (CallData, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (CallData, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee on a
	// specific date, nil when none exists. Drives the find-or-create flow.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*CallData, error)

	// Update updates an existing record
	Update(ctx context.Context, cd CallData) error

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter CallDataFilter) ([]CallData, int64, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}

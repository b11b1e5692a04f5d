package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// Create adds an employee to the directory (admin)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update edits a directory record (admin)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves employees with filters
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// Delete removes an employee (admin)
	Delete(ctx context.Context, id string) error
}

package employee

import "context"

type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, emp Employee) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Delete removes an employee record
	Delete(ctx context.Context, id string) error
}

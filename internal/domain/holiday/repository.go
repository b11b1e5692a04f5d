package holiday

import "context"

type HolidayRepository interface {
	// Create creates a new holiday
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByID retrieves a holiday by ID
	GetByID(ctx context.Context, id string) (Holiday, error)

	// ListByYear retrieves holidays falling in a year, including recurring
	// ones from other years
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	// Update updates an existing holiday
	Update(ctx context.Context, h Holiday) error

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error
}

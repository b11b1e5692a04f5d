package holiday

import "time"

type Holiday struct {
	ID   string
	Name string
	Date time.Time

	// IsRecurring marks holidays that repeat every year on the same
	// month and day.
	IsRecurring bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

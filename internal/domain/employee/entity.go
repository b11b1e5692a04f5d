package employee

import "time"

type Employee struct {
	ID         string
	FullName   string
	Email      string
	Phone      *string
	Position   *string
	Department *string
	JoinDate   *time.Time
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

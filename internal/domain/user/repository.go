package user

import "context"

type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, used for login
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update updates an existing user account
	Update(ctx context.Context, u User) error
}

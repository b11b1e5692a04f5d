package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	u.id, u.email, u.password_hash, u.role, u.employee_id, u.is_active,
	u.created_at, u.updated_at`

func scanUser(row pgx.Row, u *user.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.EmployeeID, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, password_hash, role, employee_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.EmployeeID,
		u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users u WHERE u.id = $1`

	var u user.User
	if err := scanUser(q.QueryRow(ctx, query, id), &u); err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users u WHERE u.email = $1`

	var u user.User
	if err := scanUser(q.QueryRow(ctx, query, email), &u); err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, password_hash = $2, role = $3, employee_id = $4,
			is_active = $5, updated_at = $6
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.EmployeeID,
		u.IsActive,
		time.Now(),
		u.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		if database.IsUniqueViolation(err) {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/user"
)

type userRepository struct {
	mu      sync.RWMutex
	records map[string]user.User
}

func NewUserRepository() user.UserRepository {
	return &userRepository{records: make(map[string]user.User)}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.User{}, user.ErrEmailExists
		}
	}

	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.records[u.ID] = u

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.records[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.records {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}

	for id, other := range r.records {
		if id != u.ID && strings.EqualFold(other.Email, u.Email) {
			return user.ErrEmailExists
		}
	}

	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now()
	r.records[u.ID] = u
	return nil
}

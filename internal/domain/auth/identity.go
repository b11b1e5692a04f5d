package auth

import (
	"context"

	"github.com/stafflow/hr-backend-go/internal/domain/user"
)

// Actor is the authenticated identity performing a lifecycle operation.
// Services trust it as already authenticated; they only branch on the role
// for admin bypass rules.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

type actorContextKey struct{}

// WithActor returns a context carrying the acting identity.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext extracts the acting identity placed by the auth
// middleware (or directly by tests).
func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	if !ok {
		return Actor{}, ErrInvalidToken
	}
	return actor, nil
}

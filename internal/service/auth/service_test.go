package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/jwt"
	"github.com/stafflow/hr-backend-go/internal/repository/memory"
)

type authTestEnv struct {
	service auth.AuthService
	jwt     jwt.Service
	user    user.User
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	userRepo := memory.NewUserRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	employeeID := "emp-1"
	u, err := userRepo.Create(context.Background(), user.User{
		Email:        "dina@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		EmployeeID:   &employeeID,
		IsActive:     true,
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")

	return &authTestEnv{
		service: NewAuthService(userRepo, jwtService, nil),
		jwt:     jwtService,
		user:    u,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)

	tokens, err := env.service.Login(context.Background(), auth.LoginRequest{
		Email:    "dina@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, string(user.RoleEmployee), tokens.Role)
	assert.Equal(t, "emp-1", tokens.EmployeeID)
	assert.NotZero(t, tokens.ExpiresAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)

	_, err := env.service.Login(context.Background(), auth.LoginRequest{
		Email:    "dina@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)

	_, err := env.service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	// Unknown account and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_RotatesToken(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)
	ctx := context.Background()

	tokens, err := env.service.Login(ctx, auth.LoginRequest{
		Email:    "dina@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := env.service.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// The presented token was revoked by the rotation.
	_, err = env.service.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)
	ctx := context.Background()

	tokens, err := env.service.Login(ctx, auth.LoginRequest{
		Email:    "dina@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = env.service.RefreshToken(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)
	ctx := context.Background()

	tokens, err := env.service.Login(ctx, auth.LoginRequest{
		Email:    "dina@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, env.service.Logout(ctx, tokens.RefreshToken))

	_, err = env.service.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_GoogleEndpoints_NotConfigured(t *testing.T) {
	t.Parallel()
	env := newAuthTestEnv(t)
	ctx := context.Background()

	_, err := env.service.LoginWithGoogle(ctx, "state")
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)

	_, err = env.service.OAuthCallbackGoogle(ctx, "code")
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)
}

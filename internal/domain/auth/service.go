package auth

import "context"

// AuthService defines login and token lifecycle operations
type AuthService interface {
	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// RefreshToken exchanges a refresh token for a new access token
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle returns the Google consent URL
	LoginWithGoogle(ctx context.Context, state string) (string, error)

	// OAuthCallbackGoogle completes the Google sign-in flow
	OAuthCallbackGoogle(ctx context.Context, code string) (TokenResponse, error)
}

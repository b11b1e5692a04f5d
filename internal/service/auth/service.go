package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/jwt"
	"github.com/stafflow/hr-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

// NewAuthService wires the auth service. googleService may be nil when OAuth
// is not configured; the Google endpoints then return ErrOAuthNotConfigured.
func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(u)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotate: the presented refresh token is revoked and a new pair issued.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(u)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, state string) (string, error) {
	if a.googleService == nil {
		return "", auth.ErrOAuthNotConfigured
	}
	return a.googleService.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService. Sign-in only: the Google
// account must match an existing user; no account is provisioned here.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	if a.googleService == nil {
		return auth.TokenResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}

	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	u, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(u)
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	var employeeID string
	if u.EmployeeID != nil {
		employeeID = *u.EmployeeID
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Role:         string(u.Role),
		EmployeeID:   employeeID,
	}, nil
}

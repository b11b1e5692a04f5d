package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/handler/http/response"
	"github.com/stafflow/hr-backend-go/internal/pkg/jwt"
	"github.com/stafflow/hr-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService   auth.AuthService
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		authService:   authService,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, &tokens)
	response.SuccessWithMessage(w, "Logged in successfully", tokens)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := a.refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.Unauthorized(w, "Refresh token is required")
		return
	}

	tokens, err := a.authService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, &tokens)
	response.SuccessWithMessage(w, "Token refreshed successfully", tokens)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := a.refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.Unauthorized(w, "Refresh token is required")
		return
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	cookie := a.jwtService.RefreshTokenCookie("", 0)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if a.googleService == nil {
		response.HandleError(w, auth.ErrOAuthNotConfigured)
		return
	}

	state := a.googleService.GenerateState(r.UserAgent())
	url, err := a.authService.LoginWithGoogle(r.Context(), state)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	tokens, err := a.authService.OAuthCallbackGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, &tokens)
	response.SuccessWithMessage(w, "Logged in successfully", tokens)
}

// refreshTokenFromRequest reads the refresh token from the cookie, falling
// back to the JSON body for clients that do not use cookies.
func (a *AuthHandlerImpl) refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req auth.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ""
	}
	return req.RefreshToken
}

// setRefreshCookie moves the refresh token into an HTTP-only cookie and keeps
// it out of the JSON body.
func (a *AuthHandlerImpl) setRefreshCookie(w http.ResponseWriter, tokens *auth.TokenResponse) {
	if tokens.RefreshToken == "" {
		return
	}
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.ExpiresAt))
	tokens.RefreshToken = ""
}

package dto

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// SignUpRequest creates an account and its profile row.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=landlord tenant"`
}

// LoginRequest represents the request body for password sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest re-establishes a session from a stored token pair.
type RefreshRequest struct {
	AccessToken  string `json:"accessToken" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ExchangeCodeRequest carries the authorization code Google redirected with.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SwitchRoleRequest is the body of the demo role switch.
type SwitchRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=landlord tenant"`
}

// AuthResponse is returned by every operation that establishes a session.
// Redirect is the role home the client should land on.
type AuthResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	Identity     domain.Identity `json:"identity"`
	Redirect     string          `json:"redirect"`
}

// ToAuthResponse builds the response for an established session.
func ToAuthResponse(sess *domain.AuthSession, id domain.Identity) AuthResponse {
	return AuthResponse{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    sess.ExpiresAt,
		Identity:     id,
		Redirect:     id.Role.HomeRoute(),
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Reason   string `json:"reason,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

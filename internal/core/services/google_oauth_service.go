package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/platform/config"
	"github.com/SscSPs/rental_management_app/internal/utils"
)

// googleSignInService implements the GoogleSignInSvc.
type googleSignInService struct {
	clientID     string
	oauth2Config *oauth2.Config
	validate     func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleSignInService creates a new instance of googleSignInService.
func NewGoogleSignInService(cfg *config.Config) portssvc.GoogleSignInSvc {
	return &googleSignInService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

// NewState creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleSignInService) NewState(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// LoginURL returns the URL to redirect the user to for Google login.
func (s *googleSignInService) LoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode exchanges an OAuth authorization code for a token.
func (s *googleSignInService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// VerifyIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleSignInService) VerifyIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	payload, err := s.validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

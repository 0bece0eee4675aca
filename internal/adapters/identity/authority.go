// Package identity is the account backend: password and Google sign-in,
// token issuance, and the client-side provider that keeps a session and
// broadcasts its changes.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/utils"
	"github.com/google/uuid"
)

// Config holds the token settings of an Authority.
type Config struct {
	JWTSecret  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Authority verifies credentials and issues sessions. It is stateless
// between calls; sessions live in the tokens it hands out.
type Authority struct {
	users    portsrepo.AuthUserRepositoryFacade
	profiles portsrepo.ProfileRepositoryFacade
	cfg      Config
	logger   *slog.Logger
	now      func() time.Time
}

var _ portssvc.IdentityAuthority = (*Authority)(nil)

func NewAuthority(users portsrepo.AuthUserRepositoryFacade, profiles portsrepo.ProfileRepositoryFacade, cfg Config, logger *slog.Logger) *Authority {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authority{users: users, profiles: profiles, cfg: cfg, logger: logger, now: time.Now}
}

// WithClock replaces the authority's time source.
func (a *Authority) WithClock(now func() time.Time) *Authority {
	a.now = now
	return a
}

// SignUp creates the account and its profile row.
func (a *Authority) SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) (*domain.AuthUser, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return nil, err
	}
	if len(creds.Password) < utils.MinPasswordLength {
		return nil, apperrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", utils.MinPasswordLength))
	}
	role, ok := domain.ParseRole(string(meta.Role))
	if !ok {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", meta.Role))
	}
	if strings.TrimSpace(meta.FullName) == "" {
		return nil, apperrors.NewValidationError("fullName", "is required")
	}

	hash, err := utils.HashPassword(creds.Password)
	if err != nil {
		return nil, err
	}
	user := domain.AuthUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    a.now().UTC(),
	}
	if err := a.createAccount(ctx, user, strings.TrimSpace(meta.FullName), role); err != nil {
		return nil, err
	}
	a.logger.InfoContext(ctx, "Account created", slog.String("user_id", user.ID), slog.String("role", string(role)))
	return &user, nil
}

// createAccount stores the user and then its profile, the way a signup
// trigger would.
func (a *Authority) createAccount(ctx context.Context, user domain.AuthUser, fullName string, role domain.Role) error {
	if err := a.users.SaveAuthUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("email %s is already registered: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	now := a.now().UTC()
	profile := domain.Profile{
		ID:        user.ID,
		FullName:  fullName,
		Email:     user.Email,
		Role:      string(role),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.profiles.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile for user %s: %w", user.ID, err)
	}
	return nil
}

func (a *Authority) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := a.users.FindAuthUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return a.issue(ctx, *user)
}

// SignInWithOAuth signs in an externally verified user. First use creates
// the account with a tenant profile. An existing account is only entered
// by the same provider subject that created it; the email alone never
// links accounts.
func (a *Authority) SignInWithOAuth(ctx context.Context, provider domain.AuthProvider, providerUserID, email, fullName string, emailVerified bool) (*domain.AuthSession, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !emailVerified || providerUserID == "" {
		a.logger.WarnContext(ctx, "External sign-in without a verified identity",
			slog.String("provider", string(provider)), slog.Bool("email_verified", emailVerified))
		return nil, apperrors.ErrUnauthorized
	}
	user, err := a.users.FindAuthUserByEmail(ctx, email)
	switch {
	case err == nil:
		if user.AuthProvider != provider || user.ProviderUserID != providerUserID {
			a.logger.WarnContext(ctx, "External sign-in does not own the account",
				slog.String("user_id", user.ID), slog.String("provider", string(provider)))
			return nil, apperrors.ErrUnauthorized
		}
		return a.issue(ctx, *user)
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if strings.TrimSpace(fullName) == "" {
		fullName = email
	}
	created := domain.AuthUser{
		ID:             uuid.NewString(),
		Email:          email,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		EmailVerified:  emailVerified,
		CreatedAt:      a.now().UTC(),
	}
	if err := a.createAccount(ctx, created, fullName, domain.RoleTenant); err != nil {
		return nil, err
	}
	a.logger.InfoContext(ctx, "Account created from external sign-in",
		slog.String("user_id", created.ID), slog.String("provider", string(provider)))
	return a.issue(ctx, created)
}

// SetSession validates a token pair. A still-valid access token is kept;
// an expired one is replaced and the refresh token rotated.
func (a *Authority) SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error) {
	claims, expired, err := a.parse(accessToken)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := a.users.FindAuthUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.RefreshTokenExpiryTime == nil || !utils.RefreshTokenMatches(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if a.now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if expired {
		return a.issue(ctx, *user)
	}
	return &domain.AuthSession{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         *user,
	}, nil
}

// GetUser returns the owner of a valid access token.
func (a *Authority) GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	claims, expired, err := a.parse(accessToken)
	if err != nil || expired {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := a.users.FindAuthUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// SignOut revokes the user's refresh token. Outstanding access tokens stay
// valid until they expire.
func (a *Authority) SignOut(ctx context.Context, userID string) error {
	if err := a.users.ClearRefreshToken(ctx, userID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (a *Authority) issue(ctx context.Context, user domain.AuthUser) (*domain.AuthSession, error) {
	now := a.now()
	access, expiresAt, err := utils.GenerateAccessToken(user.ID, user.Email, a.cfg.JWTSecret, a.cfg.Issuer, a.cfg.AccessTTL, now)
	if err != nil {
		return nil, err
	}
	raw, hash, err := utils.NewRefreshToken()
	if err != nil {
		return nil, err
	}
	refreshExpiry := now.Add(a.cfg.RefreshTTL)
	if err := a.users.UpdateRefreshToken(ctx, user.ID, hash, refreshExpiry); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	user.RefreshTokenHash = hash
	user.RefreshTokenExpiryTime = &refreshExpiry
	return &domain.AuthSession{AccessToken: access, RefreshToken: raw, ExpiresAt: expiresAt, User: user}, nil
}

// parse verifies the signature and issuer. expired reports a token that is
// otherwise valid but past its expiry.
func (a *Authority) parse(accessToken string) (*utils.AccessClaims, bool, error) {
	claims, err := utils.ParseAccessTokenAt(accessToken, a.cfg.JWTSecret, a.cfg.Issuer, a.now())
	if err != nil {
		return nil, false, err
	}
	return claims, !a.now().Before(claims.ExpiresAt.Time), nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperrors.NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", apperrors.NewValidationError("email", "is not a valid address")
	}
	return email, nil
}

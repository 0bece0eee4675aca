package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/rental_management_app/internal/utils/mapping"
)

// PgxUserRepository stores auth users and their profile rows.
type PgxUserRepository struct {
	BaseRepository
}

var (
	_ portsrepo.AuthUserRepositoryFacade = (*PgxUserRepository)(nil)
	_ portsrepo.ProfileRepositoryFacade  = (*PgxUserRepository)(nil)
)

const authUserColumns = `user_id, email, password_hash, auth_provider, provider_user_id, email_verified, refresh_token_hash, refresh_token_expiry_time, created_at`

func (r *PgxUserRepository) FindAuthUserByID(ctx context.Context, userID string) (*domain.AuthUser, error) {
	u, err := queryOne(ctx, r.db(ctx), mapping.ToDomainAuthUser,
		`SELECT `+authUserColumns+` FROM auth_users WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, err)
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return u, nil
}

func (r *PgxUserRepository) FindAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	u, err := queryOne(ctx, r.db(ctx), mapping.ToDomainAuthUser,
		`SELECT `+authUserColumns+` FROM auth_users WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, err)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

func (r *PgxUserRepository) SaveAuthUser(ctx context.Context, user domain.AuthUser) error {
	m := mapping.ToModelAuthUser(user)
	query := `
		INSERT INTO auth_users (user_id, email, password_hash, auth_provider, provider_user_id, email_verified, refresh_token_hash, refresh_token_expiry_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.UserID, m.Email, m.PasswordHash, m.AuthProvider, m.ProviderUserID,
		m.EmailVerified, m.RefreshTokenHash, m.RefreshTokenExpiryTime, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE auth_users SET refresh_token_hash = $2, refresh_token_expiry_time = $3 WHERE user_id = $1`,
		userID, refreshTokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE auth_users SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

const profileColumns = `user_id, full_name, email, role, created_at, updated_at`

func (r *PgxUserRepository) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := queryOne(ctx, r.db(ctx), mapping.ToDomainProfile,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("profile %s: %w", userID, err)
		}
		return nil, fmt.Errorf("failed to find profile %s: %w", userID, err)
	}
	return p, nil
}

func (r *PgxUserRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (user_id, full_name, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.db(ctx).Exec(ctx, query, m.UserID, m.FullName, m.Email, m.Role, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateProfileRole(ctx context.Context, userID string, role string) error {
	tag, err := r.db(ctx).Exec(ctx,
		`UPDATE profiles SET role = $2, updated_at = NOW() WHERE user_id = $1`, userID, role)
	if err != nil {
		return fmt.Errorf("failed to update role for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

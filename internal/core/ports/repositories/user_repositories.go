package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// AuthUserReader defines read operations for identity provider users
type AuthUserReader interface {
	// FindAuthUserByID retrieves a specific user by their ID.
	FindAuthUserByID(ctx context.Context, userID string) (*domain.AuthUser, error)

	// FindAuthUserByEmail matches emails case-insensitively.
	FindAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
}

// AuthUserWriter defines write operations for identity provider users
type AuthUserWriter interface {
	// SaveAuthUser persists a new user. Returns apperrors.ErrDuplicate when the email is taken.
	SaveAuthUser(ctx context.Context, user domain.AuthUser) error

	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

type AuthUserRepositoryFacade interface {
	AuthUserReader
	AuthUserWriter
}

// ProfileRepositoryFacade stores the profile rows that carry each user's role.
type ProfileRepositoryFacade interface {
	FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
	UpdateProfileRole(ctx context.Context, userID string, role string) error
}

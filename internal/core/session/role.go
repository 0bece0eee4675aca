package session

import (
	"fmt"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// ResolveRole maps the raw role of a profile row to a Role.
func ResolveRole(profile *domain.Profile) (domain.Role, error) {
	if profile == nil {
		return "", apperrors.NewValidationError("role", "profile is missing")
	}
	role, ok := domain.ParseRole(profile.Role)
	if !ok {
		return "", apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", profile.Role))
	}
	return role, nil
}

// IdentityFromProfile builds the identity of a resolved session. The
// profile's email wins over the auth user's.
func IdentityFromProfile(profile *domain.Profile, user domain.AuthUser) (*domain.Identity, error) {
	role, err := ResolveRole(profile)
	if err != nil {
		return nil, err
	}
	email := profile.Email
	if email == "" {
		email = user.Email
	}
	return &domain.Identity{
		ID:          profile.ID,
		DisplayName: profile.FullName,
		Email:       email,
		Role:        role,
	}, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
)

type profileService struct {
	BaseService
	profiles portsrepo.ProfileRepositoryFacade
}

func NewProfileService(profiles portsrepo.ProfileRepositoryFacade, opts ...Option) portssvc.ProfileSvcFacade {
	return &profileService{BaseService: newBaseService(opts), profiles: profiles}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) FetchProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindProfileByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch profile", slog.String("user_id", userID))
		return nil, apperrors.NewProfileFetchError(userID, err)
	}
	return profile, nil
}

func (s *profileService) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	parsed, ok := domain.ParseRole(string(role))
	if !ok {
		return apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if err := s.profiles.UpdateProfileRole(ctx, userID, string(parsed)); err != nil {
		s.LogError(ctx, err, "Failed to update role", slog.String("user_id", userID))
		return fmt.Errorf("failed to update role for user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "Profile role updated", slog.String("user_id", userID), slog.String("role", string(parsed)))
	return nil
}

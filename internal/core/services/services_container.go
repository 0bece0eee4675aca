package services

import (
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, authority portssvc.IdentityAuthority) *portssvc.ServiceContainer {
	opts := []Option{WithReferenceDate(cfg.ReferenceDate)}

	container := &portssvc.ServiceContainer{
		Authority: authority,
	}
	container.Profile = NewProfileService(repos.ProfileRepo, opts...)
	container.Landlord = NewLandlordService(repos, opts...)
	container.Tenant = NewTenantService(repos, opts...)
	container.Reporting = NewReportingService(repos, opts...)
	container.Sessions = NewSessionResolver(authority, container.Profile, cfg.SessionFetchTimeout, cfg.SessionCacheTTL, opts...)
	container.GoogleOAuth = NewGoogleSignInService(cfg)

	return container
}

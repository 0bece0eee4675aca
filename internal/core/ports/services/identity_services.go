package services

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// Subscription is a live feed of session change notifications. Events are
// delivered in the order the provider emitted them.
type Subscription interface {
	Events() <-chan domain.AuthEvent
	// Unsubscribe stops delivery and closes the Events channel.
	Unsubscribe()
}

// IdentityProvider is the client side of the external authentication
// service. It owns the current session the way a browser SDK owns its
// local storage.
type IdentityProvider interface {
	// GetSession returns the stored session, or nil when there is none.
	GetSession(ctx context.Context) (*domain.AuthSession, error)
	SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) error
	SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	SignOut(ctx context.Context) error
	// SetSession establishes a session from tokens delivered out of band,
	// such as an emailed verification link.
	SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error)
	// GetUser returns the user owning the current session.
	GetUser(ctx context.Context) (*domain.AuthUser, error)
	OnAuthStateChange(ctx context.Context) Subscription
}

// ProfileSvcFacade reads and updates the profile rows holding user roles.
type ProfileSvcFacade interface {
	// FetchProfile wraps every failure in *apperrors.ProfileFetchError.
	FetchProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateRole(ctx context.Context, userID string, role domain.Role) error
}

// IdentityAuthority is the server side of the identity provider. HTTP
// handlers use it statelessly with bearer tokens.
type IdentityAuthority interface {
	SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) (*domain.AuthUser, error)
	SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	// SignInWithOAuth signs in a user verified by an external OAuth provider,
	// creating the account and a tenant profile on first use.
	SignInWithOAuth(ctx context.Context, provider domain.AuthProvider, providerUserID, email, fullName string, emailVerified bool) (*domain.AuthSession, error)
	SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error)
	GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error)
	SignOut(ctx context.Context, userID string) error
}

// SessionResolverSvc turns a bearer token into a resolved identity.
type SessionResolverSvc interface {
	ResolveIdentity(ctx context.Context, accessToken string) (*domain.Identity, error)
	// Forget drops any cached resolution for the user, e.g. after a role switch.
	Forget(userID string)
}

package domain

import (
	"strings"
	"time"
)

// Role is the account type that decides which half of the app a user sees.
type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

const (
	LandlordHome = "/landlord"
	TenantHome   = "/tenant"
	LoginRoute   = "/login"
)

// ParseRole normalises a raw role string. ok is false for unknown roles.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleLandlord:
		return RoleLandlord, true
	case RoleTenant:
		return RoleTenant, true
	}
	return "", false
}

// HomeRoute returns the landing route for a role. Anything other than a
// landlord lands on the tenant home.
func (r Role) HomeRoute() string {
	if r == RoleLandlord {
		return LandlordHome
	}
	return TenantHome
}

// Identity is the resolved authenticated principal.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

// Profile is the stored profile row keyed by the auth user id.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthProvider identifies how an auth user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// AuthUser is the credential record held by the identity provider.
type AuthUser struct {
	ID                     string       `json:"id"`
	Email                  string       `json:"email"`
	PasswordHash           string       `json:"-"`
	AuthProvider           AuthProvider `json:"authProvider"`
	ProviderUserID         string       `json:"-"`
	EmailVerified          bool         `json:"emailVerified"`
	RefreshTokenHash       string       `json:"-"`
	RefreshTokenExpiryTime *time.Time   `json:"-"`
	CreatedAt              time.Time    `json:"createdAt"`
}

// AuthSession is an established provider session.
type AuthSession struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         AuthUser  `json:"user"`
}

// Credentials are an email and password pair.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpMetadata is attached to a new account and seeds its profile row.
type SignUpMetadata struct {
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// AuthEventType mirrors the provider's session change notifications.
type AuthEventType string

const (
	EventInitialSession AuthEventType = "INITIAL_SESSION"
	EventSignedIn       AuthEventType = "SIGNED_IN"
	EventSignedOut      AuthEventType = "SIGNED_OUT"
	EventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
	EventUserUpdated    AuthEventType = "USER_UPDATED"
)

// AuthEvent carries the session after the change, nil when signed out.
type AuthEvent struct {
	Type    AuthEventType
	Session *AuthSession
}

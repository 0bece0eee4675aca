package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/rental_management_app/internal/repositories/database/memory"
	"github.com/SscSPs/rental_management_app/internal/seed"
)

// refDate is mid January 2025, the month the demo data is centred on.
var refDate = domain.MustDate("2025-01-20")

func clock() time.Time { return refDate }

// seededRepos returns repositories holding the demo dataset.
func seededRepos(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Load(context.Background(), store, seed.Demo(), nil))
	return memory.NewRepositoryProvider(store)
}

// --- Mock PropertyRepository ---
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	var props []domain.Property
	if args.Get(0) != nil {
		props = args.Get(0).([]domain.Property)
	}
	return props, args.Error(1)
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	var prop *domain.Property
	if args.Get(0) != nil {
		prop = args.Get(0).(*domain.Property)
	}
	return prop, args.Error(1)
}

func (m *MockPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	var p *domain.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Profile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfileRole(ctx context.Context, userID string, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

// --- Mock IdentityAuthority ---
type MockIdentityAuthority struct {
	mock.Mock
}

func (m *MockIdentityAuthority) SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) (*domain.AuthUser, error) {
	args := m.Called(ctx, creds, meta)
	var u *domain.AuthUser
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.AuthUser)
	}
	return u, args.Error(1)
}

func (m *MockIdentityAuthority) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	args := m.Called(ctx, creds)
	var s *domain.AuthSession
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.AuthSession)
	}
	return s, args.Error(1)
}

func (m *MockIdentityAuthority) SignInWithOAuth(ctx context.Context, provider domain.AuthProvider, providerUserID, email, fullName string, emailVerified bool) (*domain.AuthSession, error) {
	args := m.Called(ctx, provider, providerUserID, email, fullName, emailVerified)
	var s *domain.AuthSession
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.AuthSession)
	}
	return s, args.Error(1)
}

func (m *MockIdentityAuthority) SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error) {
	args := m.Called(ctx, accessToken, refreshToken)
	var s *domain.AuthSession
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.AuthSession)
	}
	return s, args.Error(1)
}

func (m *MockIdentityAuthority) GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	args := m.Called(ctx, accessToken)
	var u *domain.AuthUser
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.AuthUser)
	}
	return u, args.Error(1)
}

func (m *MockIdentityAuthority) SignOut(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

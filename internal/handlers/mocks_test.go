package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// --- Mock SessionResolver ---
type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) ResolveIdentity(ctx context.Context, accessToken string) (*domain.Identity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockSessionResolver) Forget(userID string) {
	m.Called(userID)
}

// --- Mock LandlordService ---
type MockLandlordService struct {
	mock.Mock
}

func (m *MockLandlordService) Dashboard(ctx context.Context) (*domain.LandlordDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandlordDashboard), args.Error(1)
}

func (m *MockLandlordService) ListProperties(ctx context.Context) ([]domain.PropertyOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyOverview), args.Error(1)
}

func (m *MockLandlordService) ListTenants(ctx context.Context, status string) (*domain.TenantList, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantList), args.Error(1)
}

func (m *MockLandlordService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.InvoiceList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceList), args.Error(1)
}

func (m *MockLandlordService) ListPayments(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentList), args.Error(1)
}

func (m *MockLandlordService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseList), args.Error(1)
}

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Dashboard(ctx context.Context, tenantID string) (*domain.TenantDashboard, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantDashboard), args.Error(1)
}

func (m *MockTenantService) ListInvoices(ctx context.Context, tenantID string, status string) (*domain.InvoiceList, error) {
	args := m.Called(ctx, tenantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceList), args.Error(1)
}

func (m *MockTenantService) ListPayments(ctx context.Context, tenantID string) (*domain.PaymentList, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentList), args.Error(1)
}

func (m *MockTenantService) ListCredits(ctx context.Context, tenantID string) (*domain.CreditSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditSummary), args.Error(1)
}

func (m *MockTenantService) Statement(ctx context.Context, tenantID string) (*domain.Statement, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockTenantService) Profile(ctx context.Context, tenantID string) (*domain.TenantProfile, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantProfile), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, period domain.DateRange) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) RentRoll(ctx context.Context) (*domain.RentRoll, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRoll), args.Error(1)
}

func (m *MockReportingService) TenantPaymentHistory(ctx context.Context, period domain.DateRange) ([]domain.TenantPaymentHistory, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantPaymentHistory), args.Error(1)
}

func (m *MockReportingService) PropertyPerformance(ctx context.Context, period domain.DateRange) ([]domain.PropertyPerformance, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyPerformance), args.Error(1)
}

func (m *MockReportingService) ExpenseSummary(ctx context.Context, period domain.DateRange) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) FetchProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

// --- Mock IdentityAuthority ---
type MockAuthority struct {
	mock.Mock
}

func (m *MockAuthority) SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) (*domain.AuthUser, error) {
	args := m.Called(ctx, creds, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthUser), args.Error(1)
}

func (m *MockAuthority) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthSession), args.Error(1)
}

func (m *MockAuthority) SignInWithOAuth(ctx context.Context, provider domain.AuthProvider, providerUserID, email, fullName string, emailVerified bool) (*domain.AuthSession, error) {
	args := m.Called(ctx, provider, providerUserID, email, fullName, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthSession), args.Error(1)
}

func (m *MockAuthority) SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error) {
	args := m.Called(ctx, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthSession), args.Error(1)
}

func (m *MockAuthority) GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthUser), args.Error(1)
}

func (m *MockAuthority) SignOut(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock GoogleSignInSvc ---
type MockGoogleSignIn struct {
	mock.Mock
}

func (m *MockGoogleSignIn) NewState(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleSignIn) LoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleSignIn) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleSignIn) VerifyIDToken(ctx context.Context, rawIDToken string) (*idtoken.Payload, error) {
	args := m.Called(ctx, rawIDToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

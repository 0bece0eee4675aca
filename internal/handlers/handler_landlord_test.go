package handlers_test

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

func (s *HandlerTestSuite) TestLandlordDashboard() {
	dash := &domain.LandlordDashboard{}
	s.landlord.On("Dashboard", mock.Anything).Return(dash, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/dashboard", landlordToken, nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *HandlerTestSuite) TestLandlordRoutesRejectTenants() {
	rr := s.do(http.MethodGet, "/api/v1/landlord/dashboard", tenantToken, nil)
	s.Equal(http.StatusForbidden, rr.Code)

	var body map[string]string
	s.decode(rr, &body)
	s.Equal("/tenant", body["redirect"])
}

func (s *HandlerTestSuite) TestLandlordRoutesRequireSession() {
	rr := s.do(http.MethodGet, "/api/v1/landlord/properties", "", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)

	var body map[string]string
	s.decode(rr, &body)
	s.Equal("/login", body["redirect"])
}

func (s *HandlerTestSuite) TestListTenants_DefaultsToAll() {
	s.landlord.On("ListTenants", mock.Anything, "all").Return(&domain.TenantList{}, nil).Once()
	s.landlord.On("ListTenants", mock.Anything, "overdue").Return(&domain.TenantList{}, nil).Once()

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/landlord/tenants", landlordToken, nil).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/landlord/tenants?status=overdue", landlordToken, nil).Code)
}

func (s *HandlerTestSuite) TestListInvoices_BindsQuery() {
	want := domain.InvoiceFilter{Status: "overdue", PropertyID: "prop-1", Limit: 5, PageToken: "tok"}
	list := &domain.InvoiceList{NextPageToken: "next"}
	s.landlord.On("ListInvoices", mock.Anything, want).Return(list, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/invoices?status=overdue&propertyId=prop-1&limit=5&pageToken=tok", landlordToken, nil)
	s.Equal(http.StatusOK, rr.Code)

	var got domain.InvoiceList
	s.decode(rr, &got)
	s.Equal("next", got.NextPageToken)
}

func (s *HandlerTestSuite) TestListInvoices_BadQuery() {
	rr := s.do(http.MethodGet, "/api/v1/landlord/invoices?limit=500", landlordToken, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) TestListInvoices_BadPageToken() {
	s.landlord.On("ListInvoices", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("pageToken", "malformed page token")).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/invoices?pageToken=zzz", landlordToken, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) TestListPayments_Period() {
	want := domain.PaymentFilter{
		Method: "ach",
		Period: domain.DateRange{From: domain.MustDate("2025-01-01"), To: domain.MustDate("2025-01-31")},
	}
	s.landlord.On("ListPayments", mock.Anything, want).Return(&domain.PaymentList{}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/payments?method=ach&from=2025-01-01&to=2025-01-31", landlordToken, nil)
	s.Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/api/v1/landlord/payments?from=01/01/2025", landlordToken, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) TestListExpenses() {
	want := domain.ExpenseFilter{Category: "maintenance", PropertyID: "prop-1"}
	s.landlord.On("ListExpenses", mock.Anything, want).Return(&domain.ExpenseList{}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/expenses?category=maintenance&propertyId=prop-1", landlordToken, nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *HandlerTestSuite) TestListProperties_ServiceFailure() {
	s.landlord.On("ListProperties", mock.Anything).Return(nil, errors.New("db down")).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/properties", landlordToken, nil)
	s.Equal(http.StatusInternalServerError, rr.Code)

	var body map[string]string
	s.decode(rr, &body)
	s.Equal("Internal server error", body["error"])
}

func (s *HandlerTestSuite) TestReports() {
	january := domain.DateRange{From: domain.MustDate("2025-01-01"), To: domain.MustDate("2025-01-31")}
	query := "?from=2025-01-01&to=2025-01-31"

	tests := []struct {
		reportType string
		setup      func()
	}{
		{"income-statement", func() {
			s.reporting.On("IncomeStatement", mock.Anything, january).
				Return(&domain.IncomeStatement{TotalRevenue: decimal.NewFromInt(9500)}, nil).Once()
		}},
		{"rent-roll", func() {
			s.reporting.On("RentRoll", mock.Anything).Return(&domain.RentRoll{}, nil).Once()
		}},
		{"tenant-payments", func() {
			s.reporting.On("TenantPaymentHistory", mock.Anything, january).Return([]domain.TenantPaymentHistory{}, nil).Once()
		}},
		{"property-performance", func() {
			s.reporting.On("PropertyPerformance", mock.Anything, january).Return([]domain.PropertyPerformance{}, nil).Once()
		}},
		{"expense-summary", func() {
			s.reporting.On("ExpenseSummary", mock.Anything, january).Return(&domain.ExpenseSummary{}, nil).Once()
		}},
	}
	for _, tt := range tests {
		s.Run(tt.reportType, func() {
			tt.setup()
			rr := s.do(http.MethodGet, "/api/v1/landlord/reports/"+tt.reportType+query, landlordToken, nil)
			s.Equal(http.StatusOK, rr.Code)

			var body map[string]any
			s.decode(rr, &body)
			s.Equal(tt.reportType, body["type"])
			s.Contains(body, "report")
		})
	}
}

func (s *HandlerTestSuite) TestReports_UnknownType() {
	rr := s.do(http.MethodGet, "/api/v1/landlord/reports/balance-sheet", landlordToken, nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlerTestSuite) TestSettings_ReturnsOwnProfile() {
	profile := &domain.Profile{ID: "landlord-1", FullName: "Demo Landlord", Role: "landlord"}
	s.profiles.On("FetchProfile", mock.Anything, "landlord-1").Return(profile, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/landlord/settings", landlordToken, nil)
	s.Equal(http.StatusOK, rr.Code)

	var got domain.Profile
	s.decode(rr, &got)
	s.Equal("Demo Landlord", got.FullName)
}

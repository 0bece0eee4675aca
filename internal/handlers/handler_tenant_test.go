package handlers_test

import (
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

func (s *HandlerTestSuite) TestTenantPages_ScopedToCaller() {
	s.tenant.On("Dashboard", mock.Anything, "tenant-1").Return(&domain.TenantDashboard{}, nil).Once()
	s.tenant.On("ListInvoices", mock.Anything, "tenant-1", "all").Return(&domain.InvoiceList{}, nil).Once()
	s.tenant.On("ListInvoices", mock.Anything, "tenant-1", "paid").Return(&domain.InvoiceList{}, nil).Once()
	s.tenant.On("ListPayments", mock.Anything, "tenant-1").Return(&domain.PaymentList{}, nil).Once()
	s.tenant.On("ListCredits", mock.Anything, "tenant-1").Return(&domain.CreditSummary{}, nil).Once()
	s.tenant.On("Statement", mock.Anything, "tenant-1").Return(&domain.Statement{}, nil).Once()
	s.tenant.On("Profile", mock.Anything, "tenant-1").Return(&domain.TenantProfile{}, nil).Once()

	for _, path := range []string{
		"/api/v1/tenant/dashboard",
		"/api/v1/tenant/invoices",
		"/api/v1/tenant/invoices?status=paid",
		"/api/v1/tenant/payments",
		"/api/v1/tenant/credits",
		"/api/v1/tenant/statement",
		"/api/v1/tenant/profile",
	} {
		rr := s.do(http.MethodGet, path, tenantToken, nil)
		s.Equal(http.StatusOK, rr.Code, path)
	}
}

func (s *HandlerTestSuite) TestTenantRoutesRejectLandlords() {
	rr := s.do(http.MethodGet, "/api/v1/tenant/statement", landlordToken, nil)
	s.Equal(http.StatusForbidden, rr.Code)

	var body map[string]string
	s.decode(rr, &body)
	s.Equal("/landlord", body["redirect"])
}

func (s *HandlerTestSuite) TestTenantDashboard_NoTenantRecord() {
	s.tenant.On("Dashboard", mock.Anything, "tenant-1").Return(nil, apperrors.ErrNotFound).Once()

	rr := s.do(http.MethodGet, "/api/v1/tenant/dashboard", tenantToken, nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

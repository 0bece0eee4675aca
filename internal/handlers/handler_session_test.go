package handlers_test

import (
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/core/session"
	"github.com/SscSPs/rental_management_app/internal/dto"
)

func (s *HandlerTestSuite) TestRoot_RedirectsByRole() {
	s.sessions.On("ResolveIdentity", mock.Anything, "expired").Return(nil, apperrors.ErrUnauthorized).Once()

	tests := []struct {
		token    string
		location string
	}{
		{"", "/login"},
		{"expired", "/login"},
		{landlordToken, "/landlord"},
		{tenantToken, "/tenant"},
	}
	for _, tt := range tests {
		rr := s.do(http.MethodGet, "/", tt.token, nil)
		s.Equal(http.StatusFound, rr.Code)
		s.Equal(tt.location, rr.Header().Get("Location"), tt.token)
	}
}

func (s *HandlerTestSuite) TestAccess() {
	tests := []struct {
		name  string
		path  string
		token string
		want  session.Decision
	}{
		{"public login", "/api/v1/access?path=/login", "", session.Decision{Kind: session.Permit}},
		{"anonymous protected", "/api/v1/access?path=/landlord/reports", "", session.Decision{Kind: session.Redirect, Location: "/login"}},
		{"unknown path", "/api/v1/access?path=/admin", tenantToken, session.Decision{Kind: session.NotFound}},
		{"cross role unscoped", "/api/v1/access?path=/landlord", tenantToken, session.Decision{Kind: session.Permit}},
		{"cross role scoped", "/api/v1/access?path=/landlord&scoped=true", tenantToken, session.Decision{Kind: session.Redirect, Location: "/tenant"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rr := s.do(http.MethodGet, tt.path, tt.token, nil)
			s.Equal(http.StatusOK, rr.Code)

			var got session.Decision
			s.decode(rr, &got)
			s.Equal(tt.want, got)
		})
	}
}

func (s *HandlerTestSuite) TestAccess_RequiresPath() {
	rr := s.do(http.MethodGet, "/api/v1/access", "", nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) TestMe() {
	rr := s.do(http.MethodGet, "/api/v1/me", tenantToken, nil)
	s.Equal(http.StatusOK, rr.Code)

	var got domain.Identity
	s.decode(rr, &got)
	s.Equal(tenantIdentity, got)
}

func (s *HandlerTestSuite) TestSwitchRole() {
	s.profiles.On("UpdateRole", mock.Anything, "tenant-1", domain.RoleLandlord).Return(nil).Once()
	s.sessions.On("Forget", "tenant-1").Once()

	rr := s.do(http.MethodPost, "/api/v1/me/role", tenantToken, dto.SwitchRoleRequest{Role: "landlord"})
	s.Equal(http.StatusOK, rr.Code)

	var got domain.Identity
	s.decode(rr, &got)
	s.Equal(domain.RoleLandlord, got.Role)
	s.sessions.AssertCalled(s.T(), "Forget", "tenant-1")
}

func (s *HandlerTestSuite) TestSwitchRole_Disabled() {
	s.cfg.EnableRoleSwitch = false
	s.router = s.buildRouter()

	rr := s.do(http.MethodPost, "/api/v1/me/role", tenantToken, dto.SwitchRoleRequest{Role: "landlord"})
	s.Equal(http.StatusNotFound, rr.Code)
	s.profiles.AssertNotCalled(s.T(), "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

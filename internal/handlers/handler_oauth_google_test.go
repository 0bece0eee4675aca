package handlers_test

import (
	"errors"
	"net/http"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/dto"
)

func googleToken(idToken string) *oauth2.Token {
	tok := &oauth2.Token{AccessToken: "google-access"}
	if idToken == "" {
		return tok
	}
	return tok.WithExtra(map[string]any{"id_token": idToken})
}

func (s *HandlerTestSuite) TestGoogleLoginURL() {
	s.google.On("NewState", mock.Anything).Return("abc123", nil).Once()
	s.google.On("LoginURL", mock.Anything, "abc123").Return("https://accounts.google.com/o/oauth2/auth?state=abc123").Once()

	rr := s.do(http.MethodGet, "/api/v1/auth/google/login-url", "", nil)
	s.Equal(http.StatusOK, rr.Code)

	var got map[string]string
	s.decode(rr, &got)
	s.Equal("abc123", got["state"])
	s.Contains(got["url"], "state=abc123")
}

func (s *HandlerTestSuite) TestGoogleExchangeCode() {
	payload := &idtoken.Payload{Subject: "g-42", Claims: map[string]any{
		"email": "new.tenant@gmail.com", "name": "New Tenant", "email_verified": true,
	}}
	sess := &domain.AuthSession{
		AccessToken: "access", RefreshToken: "refresh",
		User: domain.AuthUser{ID: "user-g42", Email: "new.tenant@gmail.com"},
	}
	s.google.On("ExchangeCode", mock.Anything, "code-1").Return(googleToken("id-token"), nil).Once()
	s.google.On("VerifyIDToken", mock.Anything, "id-token").Return(payload, nil).Once()
	s.authority.On("SignInWithOAuth", mock.Anything, domain.ProviderGoogle, "g-42", "new.tenant@gmail.com", "New Tenant", true).
		Return(sess, nil).Once()
	s.profiles.On("FetchProfile", mock.Anything, "user-g42").
		Return(&domain.Profile{ID: "user-g42", FullName: "New Tenant", Email: "new.tenant@gmail.com", Role: "tenant"}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/google/exchange-code", "", dto.ExchangeCodeRequest{Code: "code-1"})
	s.Equal(http.StatusOK, rr.Code)

	var got dto.AuthResponse
	s.decode(rr, &got)
	s.Equal(domain.RoleTenant, got.Identity.Role)
	s.Equal("/tenant", got.Redirect)
}

func (s *HandlerTestSuite) TestGoogleExchangeCode_Failures() {
	tests := []struct {
		name     string
		body     any
		setup    func()
		wantCode int
	}{
		{
			name:     "missing code",
			body:     map[string]string{},
			setup:    func() {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "code rejected by google",
			body: dto.ExchangeCodeRequest{Code: "stale"},
			setup: func() {
				s.google.On("ExchangeCode", mock.Anything, "stale").
					Return(nil, errors.New(`oauth2: "invalid_grant" "Bad Request"`)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "google unreachable",
			body: dto.ExchangeCodeRequest{Code: "slow"},
			setup: func() {
				s.google.On("ExchangeCode", mock.Anything, "slow").
					Return(nil, errors.New("dial tcp: i/o timeout")).Once()
			},
			wantCode: http.StatusGatewayTimeout,
		},
		{
			name: "no id token in response",
			body: dto.ExchangeCodeRequest{Code: "bare"},
			setup: func() {
				s.google.On("ExchangeCode", mock.Anything, "bare").Return(googleToken(""), nil).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "id token fails verification",
			body: dto.ExchangeCodeRequest{Code: "forged"},
			setup: func() {
				s.google.On("ExchangeCode", mock.Anything, "forged").Return(googleToken("bad-token"), nil).Once()
				s.google.On("VerifyIDToken", mock.Anything, "bad-token").Return(nil, errors.New("audience mismatch")).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setup()
			rr := s.do(http.MethodPost, "/api/v1/auth/google/exchange-code", "", tt.body)
			s.Equal(tt.wantCode, rr.Code)
		})
	}
}

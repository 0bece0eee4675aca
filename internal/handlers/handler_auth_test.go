package handlers_test

import (
	"errors"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/dto"
)

func landlordSession() *domain.AuthSession {
	return &domain.AuthSession{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Date(2025, 1, 20, 13, 0, 0, 0, time.UTC),
		User:         domain.AuthUser{ID: "landlord-1", Email: "landlord@demo.rentals"},
	}
}

func landlordProfile() *domain.Profile {
	return &domain.Profile{ID: "landlord-1", FullName: "Demo Landlord", Email: "landlord@demo.rentals", Role: "landlord"}
}

func (s *HandlerTestSuite) TestLogin() {
	creds := domain.Credentials{Email: "landlord@demo.rentals", Password: "rentals-demo"}
	s.authority.On("SignInWithPassword", mock.Anything, creds).Return(landlordSession(), nil).Once()
	s.profiles.On("FetchProfile", mock.Anything, "landlord-1").Return(landlordProfile(), nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: creds.Email, Password: creds.Password})
	s.Equal(http.StatusOK, rr.Code)

	var got dto.AuthResponse
	s.decode(rr, &got)
	s.Equal("access", got.AccessToken)
	s.Equal("refresh", got.RefreshToken)
	s.Equal(domain.RoleLandlord, got.Identity.Role)
	s.Equal("Demo Landlord", got.Identity.DisplayName)
	s.Equal("/landlord", got.Redirect)
}

func (s *HandlerTestSuite) TestLogin_Failures() {
	tests := []struct {
		name       string
		body       any
		setup      func()
		wantCode   int
		wantReason string
	}{
		{
			name:     "malformed body",
			body:     map[string]string{"email": "not-an-email"},
			setup:    func() {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			body: dto.LoginRequest{Email: "landlord@demo.rentals", Password: "nope"},
			setup: func() {
				s.authority.On("SignInWithPassword", mock.Anything, mock.Anything).
					Return(nil, apperrors.NewAuthError(apperrors.ReasonInvalidCredentials, nil)).Once()
			},
			wantCode:   http.StatusUnauthorized,
			wantReason: string(apperrors.ReasonInvalidCredentials),
		},
		{
			name: "profile missing",
			body: dto.LoginRequest{Email: "landlord@demo.rentals", Password: "rentals-demo"},
			setup: func() {
				s.authority.On("SignInWithPassword", mock.Anything, mock.Anything).Return(landlordSession(), nil).Once()
				s.profiles.On("FetchProfile", mock.Anything, "landlord-1").
					Return(nil, apperrors.NewProfileFetchError("landlord-1", apperrors.ErrNotFound)).Once()
			},
			wantCode:   http.StatusUnauthorized,
			wantReason: string(apperrors.ReasonProfileNotFound),
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setup()
			rr := s.do(http.MethodPost, "/api/v1/auth/login", "", tt.body)
			s.Equal(tt.wantCode, rr.Code)

			var body map[string]string
			s.decode(rr, &body)
			s.Equal(tt.wantReason, body["reason"])
		})
	}
}

func (s *HandlerTestSuite) TestSignUp_SignsIn() {
	creds := domain.Credentials{Email: "new@example.com", Password: "long-enough"}
	meta := domain.SignUpMetadata{FullName: "New Tenant", Role: domain.RoleTenant}
	sess := &domain.AuthSession{AccessToken: "a", RefreshToken: "r", User: domain.AuthUser{ID: "user-9", Email: creds.Email}}

	s.authority.On("SignUp", mock.Anything, creds, meta).Return(&sess.User, nil).Once()
	s.authority.On("SignInWithPassword", mock.Anything, creds).Return(sess, nil).Once()
	s.profiles.On("FetchProfile", mock.Anything, "user-9").
		Return(&domain.Profile{ID: "user-9", FullName: "New Tenant", Role: "tenant"}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/signup", "", dto.SignUpRequest{
		Email: creds.Email, Password: creds.Password, FullName: meta.FullName, Role: "tenant",
	})
	s.Equal(http.StatusCreated, rr.Code)

	var got dto.AuthResponse
	s.decode(rr, &got)
	s.Equal("/tenant", got.Redirect)
	s.Equal("new@example.com", got.Identity.Email)
}

func (s *HandlerTestSuite) TestSignUp_Duplicate() {
	s.authority.On("SignUp", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/signup", "", dto.SignUpRequest{
		Email: "landlord@demo.rentals", Password: "long-enough", FullName: "Someone", Role: "landlord",
	})
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *HandlerTestSuite) TestSignUp_RejectsUnknownRole() {
	rr := s.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"email": "x@example.com", "password": "long-enough", "fullName": "X", "role": "admin",
	})
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) TestRefresh() {
	s.authority.On("SetSession", mock.Anything, "old-access", "refresh").Return(landlordSession(), nil).Once()
	s.profiles.On("FetchProfile", mock.Anything, "landlord-1").Return(landlordProfile(), nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{AccessToken: "old-access", RefreshToken: "refresh"})
	s.Equal(http.StatusOK, rr.Code)
}

func (s *HandlerTestSuite) TestRefresh_Expired() {
	s.authority.On("SetSession", mock.Anything, "old-access", "stale").Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{AccessToken: "old-access", RefreshToken: "stale"})
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *HandlerTestSuite) TestLogout() {
	s.authority.On("SignOut", mock.Anything, "landlord-1").Return(nil).Once()
	s.sessions.On("Forget", "landlord-1").Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/logout", landlordToken, nil)
	s.Equal(http.StatusNoContent, rr.Code)
	s.sessions.AssertCalled(s.T(), "Forget", "landlord-1")
}

func (s *HandlerTestSuite) TestLogout_RequiresSession() {
	rr := s.do(http.MethodPost, "/api/v1/auth/logout", "", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *HandlerTestSuite) TestCallback() {
	tests := []struct {
		name     string
		query    string
		setup    func()
		location string
	}{
		{
			name:  "query tokens",
			query: "?access_token=access&refresh_token=refresh",
			setup: func() {
				s.authority.On("SetSession", mock.Anything, "access", "refresh").Return(landlordSession(), nil).Once()
				s.authority.On("GetUser", mock.Anything, "access").Return(&landlordSession().User, nil).Once()
				s.profiles.On("FetchProfile", mock.Anything, "landlord-1").Return(landlordProfile(), nil).Once()
			},
			location: "http://app.test/landlord",
		},
		{
			name:  "raw fragment",
			query: "?fragment=%23access_token%3Daccess%26refresh_token%3Drefresh",
			setup: func() {
				s.authority.On("SetSession", mock.Anything, "access", "refresh").Return(landlordSession(), nil).Once()
				s.authority.On("GetUser", mock.Anything, "access").Return(&landlordSession().User, nil).Once()
				s.profiles.On("FetchProfile", mock.Anything, "landlord-1").Return(landlordProfile(), nil).Once()
			},
			location: "http://app.test/landlord",
		},
		{
			name:  "expired access token is rotated",
			query: "?access_token=stale&refresh_token=refresh",
			setup: func() {
				s.authority.On("SetSession", mock.Anything, "stale", "refresh").Return(landlordSession(), nil).Once()
				s.authority.On("GetUser", mock.Anything, "access").Return(&landlordSession().User, nil).Once()
				s.profiles.On("FetchProfile", mock.Anything, "landlord-1").Return(landlordProfile(), nil).Once()
			},
			location: "http://app.test/landlord#access_token=access&refresh_token=refresh",
		},
		{
			name:     "missing tokens",
			query:    "",
			setup:    func() {},
			location: "http://app.test/login",
		},
		{
			name:  "session rejected",
			query: "?access_token=bad&refresh_token=bad",
			setup: func() {
				s.authority.On("SetSession", mock.Anything, "bad", "bad").Return(nil, errors.New("invalid token")).Once()
			},
			location: "http://app.test/login?error=session_failed",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setup()
			rr := s.do(http.MethodGet, "/auth/callback"+tt.query, "", nil)
			s.Equal(http.StatusFound, rr.Code)
			s.Equal(tt.location, rr.Header().Get("Location"))
		})
	}
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/core/session"
	"github.com/SscSPs/rental_management_app/internal/dto"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

// ProviderFactory builds a fresh client side identity provider for one
// request. The callback flow needs one because providers hold session state.
type ProviderFactory func(logger *slog.Logger) portssvc.IdentityProvider

// AuthHandler handles sign-up, sign-in and session lifecycle requests.
type AuthHandler struct {
	authority   portssvc.IdentityAuthority
	profiles    portssvc.ProfileSvcFacade
	sessions    portssvc.SessionResolverSvc
	newProvider ProviderFactory
	frontendURL string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, newProvider ProviderFactory, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authority:   services.Authority,
		profiles:    services.Profile,
		sessions:    services.Sessions,
		newProvider: newProvider,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
	}
}

func registerAuthRoutes(r *gin.Engine, h *AuthHandler, loginLimiter *limiter.Limiter, requireSession gin.HandlerFunc) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/signup", middleware.RateLimit(loginLimiter), h.SignUp)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", requireSession, h.Logout)
	}
	r.GET(session.CallbackRoute, h.Callback)
}

// establish resolves the identity behind a fresh session and writes it.
func (h *AuthHandler) establish(c *gin.Context, status int, sess *domain.AuthSession) {
	profile, err := h.profiles.FetchProfile(c.Request.Context(), sess.User.ID)
	if err != nil {
		respondError(c, "Failed to load profile for new session", apperrors.NewAuthError(apperrors.ReasonProfileNotFound, err))
		return
	}
	id, err := session.IdentityFromProfile(profile, sess.User)
	if err != nil {
		respondError(c, "Profile has no usable role", apperrors.NewAuthError(apperrors.ReasonProfileNotFound, err))
		return
	}
	c.JSON(status, dto.ToAuthResponse(sess, *id))
}

// SignUp godoc
// @Summary Create an account
// @Description Creates an account with a profile holding the chosen role and signs it in.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignUpRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	role, _ := domain.ParseRole(req.Role)
	creds := domain.Credentials{Email: req.Email, Password: req.Password}

	user, err := h.authority.SignUp(c.Request.Context(), creds, domain.SignUpMetadata{FullName: req.FullName, Role: role})
	if err != nil {
		respondError(c, "Failed to sign up", err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("user_id", user.ID), slog.String("role", string(role)))

	sess, err := h.authority.SignInWithPassword(c.Request.Context(), creds)
	if err != nil {
		respondError(c, "Failed to sign in new account", err)
		return
	}
	h.establish(c, http.StatusCreated, sess)
}

// Login godoc
// @Summary Password sign-in
// @Description Authenticates with email and password and returns a token pair plus the landing route.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess, err := h.authority.SignInWithPassword(c.Request.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Info("Sign-in rejected")
		}
		respondError(c, "Failed to sign in", err)
		return
	}
	h.establish(c, http.StatusOK, sess)
}

// Refresh godoc
// @Summary Refresh a session
// @Description Re-establishes a session from a stored token pair, rotating an expired access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Token pair"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sess, err := h.authority.SetSession(c.Request.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		respondError(c, "Failed to refresh session", err)
		return
	}
	h.establish(c, http.StatusOK, sess)
}

// Logout godoc
// @Summary Sign out
// @Description Revokes the refresh token of the current user.
// @Tags auth
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, "Missing identity on logout", apperrors.ErrUnauthorized)
		return
	}
	if err := h.authority.SignOut(c.Request.Context(), userID); err != nil {
		respondError(c, "Failed to sign out", err)
		return
	}
	h.sessions.Forget(userID)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Signed out")
	c.Status(http.StatusNoContent)
}

// Callback godoc
// @Summary Auth redirect callback
// @Description Establishes the session carried by an auth redirect and redirects to the role home, or to the login route with an error reason.
// @Description Browsers keep the URL fragment client side, so the token pair is accepted either as a raw "fragment" parameter or as plain query parameters.
// @Tags auth
// @Param fragment query string false "Raw redirect fragment"
// @Param access_token query string false "Access token"
// @Param refresh_token query string false "Refresh token"
// @Success 302
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fragment := c.Query("fragment")
	if fragment == "" {
		fragment = url.Values{
			"access_token":  {c.Query("access_token")},
			"refresh_token": {c.Query("refresh_token")},
		}.Encode()
	}

	exchanger := session.NewCallbackExchanger(h.newProvider(logger), h.profiles, logger)
	location, err := exchanger.Exchange(c.Request.Context(), fragment)
	if err != nil {
		logger.Info("Auth callback failed", slog.String("error", err.Error()))
	}
	c.Redirect(http.StatusFound, h.frontendURL+location)
}

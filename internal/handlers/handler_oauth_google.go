package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/dto"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

// GoogleOAuthHandler signs users in with a Google authorization code.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleSignInSvc
	auth               *AuthHandler
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(googleOAuthService portssvc.GoogleSignInSvc, auth *AuthHandler) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{googleOAuthService: googleOAuthService, auth: auth}
}

func registerGoogleOAuthRoutes(r *gin.Engine, h *GoogleOAuthHandler) {
	googleRoutes := r.Group("/api/v1/auth/google")
	{
		googleRoutes.GET("/login-url", h.LoginURL)
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// LoginURL godoc
// @Summary Google consent URL
// @Description Returns the Google consent URL together with the CSRF state the frontend must check on return.
// @Tags oauth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) LoginURL(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.NewState(ctx)
	if err != nil {
		respondError(c, "Failed to generate OAuth state", err)
		return
	}
	c.JSON(200, gin.H{"url": h.googleOAuthService.LoginURL(ctx, state), "state": state})
}

// ExchangeCodeGoogle handles the authorization code the frontend received
// from Google. It exchanges the code, validates the ID token, signs the
// user in (creating a tenant account on first use) and returns a session.
// @Summary Exchange a Google authorization code for a session
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse "Google unreachable"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCode(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleOAuthService.VerifyIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.JSON(appErr.Code, appErr)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		appErr := apperrors.NewInternalServerError("Essential user information missing from Google token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	sess, err := h.auth.authority.SignInWithOAuth(ctx, domain.ProviderGoogle, payload.Subject, email, name, emailVerified)
	if err != nil {
		respondError(c, "Failed to sign in Google user", err)
		return
	}
	logger.Info("User signed in via Google", slog.String("user_id", sess.User.ID))
	h.auth.establish(c, 200, sess)
}

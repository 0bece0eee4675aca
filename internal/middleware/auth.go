package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
)

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "redirect": domain.LoginRoute})
}

// RequireSession resolves the bearer token to an identity, failing closed:
// any failure along token, user and profile answers 401.
func RequireSession(resolver portssvc.SessionResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}
		token, ok := BearerToken(authHeader)
		if !ok {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		id, err := resolver.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Session could not be resolved", slog.String("error", err.Error()))
			}
			appErr := apperrors.FromError(err)
			if appErr.Code == http.StatusInternalServerError {
				appErr = apperrors.NewUnauthorizedError("Session could not be resolved")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    appErr.Message,
				"reason":   appErr.Reason,
				"redirect": domain.LoginRoute,
			})
			return
		}

		enriched := logger.With(slog.String("user_id", id.ID), slog.String("role", string(id.Role)))
		ctx := WithIdentity(c.Request.Context(), *id, token)
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))
		c.Next()
	}
}

// RequireRole limits a subtree to one role. It must run after RequireSession.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentityFromContext(c)
		if !ok {
			abortUnauthorized(c, "Unauthorized")
			return
		}
		if id.Role != role {
			GetLoggerFromCtx(c.Request.Context()).Info("Role not allowed on route",
				slog.String("required", string(role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"redirect": id.Role.HomeRoute(),
			})
			return
		}
		c.Next()
	}
}

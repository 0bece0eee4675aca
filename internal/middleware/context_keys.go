package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

const (
	userIDKey      = contextKey("userID")
	identityKey    = contextKey("identity")
	accessTokenKey = contextKey("accessToken")
)

// WithIdentity stores the resolved identity and its access token.
func WithIdentity(ctx context.Context, id domain.Identity, accessToken string) context.Context {
	ctx = context.WithValue(ctx, identityKey, id)
	ctx = context.WithValue(ctx, userIDKey, id.ID)
	return context.WithValue(ctx, accessTokenKey, accessToken)
}

// GetIdentityFromContext returns the identity set by RequireSession.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	id, ok := c.Request.Context().Value(identityKey).(domain.Identity)
	return id, ok
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetAccessTokenFromContext returns the bearer token the identity was
// resolved from.
func GetAccessTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(accessTokenKey).(string)
	return token, ok && token != ""
}

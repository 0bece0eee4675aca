package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/utils"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PageViews captures one analytics event per successful request of an
// authenticated user, named after the route ("/api/v1/landlord/dashboard"
// becomes "api_v1_landlord_dashboard").
func PageViews(analytics *utils.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if id, ok := GetIdentityFromContext(c); ok {
			props["role"] = string(id.Role)
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		analytics.Capture(userID, event, props)
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/desk_booking_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog.
// The presence probe is polled every few seconds and would drown everything else.
var pathsToSkip = map[string]bool{
	"/health":          true,
	"/api/v1/presence": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		actor, exists := GetActorFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/bookings/:id/check-in" -> "api_v1_bookings_:id_check-in"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"role":        string(actor.Role),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(actor.UserID, eventName, props)
	}
}

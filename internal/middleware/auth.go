package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"recurring-task-management/pkg/response"
)

// ContextUserIDKey is where Auth stores the authenticated user ID.
const ContextUserIDKey = "user_id"

// UserID returns the authenticated user ID set by Auth, or "".
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

// Auth validates the shared bearer token and resolves the acting user from
// the X-User-ID header.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiToken != "" {
			header := c.GetHeader("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(m.apiToken)) != 1 {
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

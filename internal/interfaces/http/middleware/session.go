// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/rsvp-backend/internal/config"
	"github.com/your-org/rsvp-backend/internal/pkg/session"
)

// RequireSession creates the session-guard middleware. A missing or invalid
// token yields 401; the client treats that as its redirect-to-signin signal.
func RequireSession(cfg *config.Config) gin.HandlerFunc {
	manager := session.NewManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := session.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := manager.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("phone", claims.Phone)

		c.Next()
	}
}

// GetPhoneFromContext extracts the signed-in phone number from gin context
func GetPhoneFromContext(c *gin.Context) (string, bool) {
	phone, exists := c.Get("phone")
	if !exists {
		return "", false
	}
	return phone.(string), true
}

package middleware

import (
	"github.com/Conceptual-Machines/ideachords-api/internal/config"
	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

// Auth picks the identity middleware for the configured AUTH_MODE.
// Generation is public, so identity is only used to label logs.
func Auth(cfg *config.Config) gin.HandlerFunc {
	if cfg.IsGatewayMode() {
		return GatewayIdentity()
	}
	return NoAuth()
}

// NoAuth marks every request as anonymous (AUTH_MODE=none)
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id_str", anonymousUser)
		c.Next()
	}
}

// GatewayIdentity trusts the X-User-ID header set by the hosting gateway.
// Requests without it are treated as anonymous rather than rejected.
func GatewayIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = anonymousUser
		}
		c.Set("user_id_str", userID)
		c.Next()
	}
}

// GetUserID returns the identity set by Auth, or false if none was set
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id_str")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

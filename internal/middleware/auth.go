package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autogleam/detailing-api/internal/auth"
	"github.com/autogleam/detailing-api/internal/config"
	"github.com/autogleam/detailing-api/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AuthDisabled {
			c.Set(ContextUserID, uint(1))
			c.Set(ContextUserEmail, "test@localhost")
			c.Set(ContextUserRole, models.RoleAdmin)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		ident, err := auth.ParseToken(parts[1], []byte(cfg.JWTSecret))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUserID, ident.UserID)
		c.Set(ContextUserEmail, ident.Email)
		c.Set(ContextUserRole, ident.Role)

		c.Next()
	}
}

// RoleFromContext returns the caller role, defaulting to employee so a
// missing value never widens access.
func RoleFromContext(c *gin.Context) string {
	if role, ok := c.Get(ContextUserRole); ok {
		if s, ok := role.(string); ok && s != "" {
			return s
		}
	}
	return models.RoleEmployee
}

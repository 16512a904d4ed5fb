package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/threadforgehq/thread-generator-backend/internal/services/auth"
)

// AuthMiddleware authenticates management requests with either an API key
// ("ApiKey <key>") or a bearer token ("Bearer <jwt>")
type AuthMiddleware struct {
	authService *auth.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService *auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequireAuth validates the Authorization header and sets the key context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		switch {
		case strings.HasPrefix(authHeader, "ApiKey "):
			key := strings.TrimPrefix(authHeader, "ApiKey ")
			apiKey, err := m.authService.ValidateAPIKey(key)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				c.Abort()
				return
			}
			c.Set("key_id", apiKey.ID)
			c.Set("auth_type", "api_key")

		case strings.HasPrefix(authHeader, "Bearer "):
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			tokenInfo, err := m.authService.ValidateToken(tokenString)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				c.Abort()
				return
			}
			c.Set("key_id", tokenInfo.KeyID)
			c.Set("auth_type", "bearer")

		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		c.Next()
	}
}

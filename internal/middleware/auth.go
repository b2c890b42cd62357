package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/auth"
)

const (
	// UserIDKey is the gin context key for the authenticated user ID.
	UserIDKey = "user_id"
	// EmailKey is the gin context key for the authenticated user's email.
	EmailKey = "email"
)

// GetUserID extracts the authenticated user ID from the gin context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the authenticated user's email from the gin context.
// Returns empty string if not found.
func GetEmail(c *gin.Context) string {
	email, _ := c.Value(EmailKey).(string)
	return email
}

// RequireAuth returns a middleware that validates JWT bearer tokens. It
// extracts the token from the Authorization header, validates it, and adds
// the user ID and email to the request context. Requests without a valid
// token are rejected with 401 before reaching any handler.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

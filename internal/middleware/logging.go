package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger returns a middleware that logs every request with its
// method, path, status, authenticated user (empty pre-auth), and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Writer.Status()
		userID := GetUserID(c)

		if status >= 500 {
			slog.Error("Request failed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"user_id", userID,
				"duration_ms", duration,
			)
		} else if status >= 400 {
			slog.Warn("Request rejected",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"user_id", userID,
				"duration_ms", duration,
			)
		} else {
			slog.Info("Request ok",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"user_id", userID,
				"duration_ms", duration,
			)
		}
	}
}

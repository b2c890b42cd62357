// Package handlers implements the HTTP surface: request decoding and
// validation, dispatch into the service layer, and mapping service error
// kinds to stable HTTP statuses.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/auth"
	"taskboard/internal/service"
	"taskboard/internal/storage"
)

const version = "1.0.0"

type Handler struct {
	Auth     *service.AuthService
	Projects *service.ProjectService
	Tasks    *service.TaskService

	startTime time.Time
}

// NewHandler wires the services over the given storage backend.
func NewHandler(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *Handler {
	authenticator := auth.NewPasswordAuthenticator(store)
	return &Handler{
		Auth:      service.NewAuthService(authenticator, jwtManager, logger),
		Projects:  service.NewProjectService(store),
		Tasks:     service.NewTaskService(store),
		startTime: time.Now(),
	}
}

// writeServiceError maps service error kinds to HTTP statuses. Anything
// outside the known kinds is an internal failure and is reported without
// detail so storage errors never leak to callers.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Package http registers the transport routes over the service layer.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskboard/internal/auth"
	"taskboard/internal/http/handlers"
	"taskboard/internal/middleware"
)

// RegisterRoutes wires all endpoints onto the gin engine. Auth endpoints
// are public; everything under /projects and /tasks requires a valid bearer
// token, which supplies the requester identity for every ownership check.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, jwtManager *auth.JWTManager) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	protected := r.Group("/", middleware.RequireAuth(jwtManager))
	{
		protected.GET("/projects", h.ListProjects)
		protected.POST("/projects", h.CreateProject)
		protected.GET("/projects/:id", h.GetProject)
		protected.PUT("/projects/:id", h.UpdateProject)
		protected.DELETE("/projects/:id", h.DeleteProject)

		protected.GET("/projects/:id/tasks", h.ListProjectTasks)
		protected.POST("/projects/:id/tasks", h.CreateTask)

		protected.PUT("/tasks/:id", h.UpdateTask)
		protected.DELETE("/tasks/:id", h.DeleteTask)
	}
}

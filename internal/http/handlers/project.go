package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/service"
)

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

// CreateProject creates a project owned by the authenticated user.
func (h *Handler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.Projects.Create(c.Request.Context(), middleware.GetUserID(c), req.Name, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects returns all projects owned by the authenticated user.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.Projects.ListOwned(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if projects == nil {
		projects = []*models.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project. Missing and unowned projects are
// both 404; the response never reveals that someone else's project exists.
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.Projects.GetOwned(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject applies a partial update; only provided fields change.
func (h *Handler) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.Projects.Update(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), service.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project and, through the storage cascade, all of
// its tasks. Responds 204 on success.
func (h *Handler) DeleteProject(c *gin.Context) {
	if _, err := h.Projects.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

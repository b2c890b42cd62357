package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/service"
)

type createTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type updateTaskRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1"`
	Completed *bool   `json:"completed"`
}

// CreateTask creates a task inside the project from the URL. The parent
// project must be owned by the authenticated user; otherwise 404, whether
// the project is missing or someone else's.
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), req.Title)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListProjectTasks returns all tasks of the project from the URL, under the
// same ownership gate as CreateTask.
func (h *Handler) ListProjectTasks(c *gin.Context) {
	tasks, err := h.Tasks.ListByProject(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if tasks == nil {
		tasks = []*models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// UpdateTask applies a partial update to a task. A missing task is 404; an
// existing task under someone else's project is 403.
func (h *Handler) UpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), service.TaskPatch{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task under the same gate as UpdateTask. Responds 204
// on success.
func (h *Handler) DeleteTask(c *gin.Context) {
	if _, err := h.Tasks.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

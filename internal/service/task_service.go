package service

import (
	"context"
	"fmt"
	"log/slog"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

// TaskPatch describes a partial update to a task. A nil field was not
// provided and leaves the stored value unchanged.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// TaskService handles task CRUD. Tasks have no owner of their own, so every
// authorization check walks the ownership chain to the parent project's
// owner. Entry-point operations (create, list) gate through the project the
// same way ProjectService does; mutations on a known task id instead
// distinguish a missing task (ErrNotFound) from a task owned through
// someone else's project (ErrUnauthorized).
type TaskService struct {
	store    storage.Store
	projects *ProjectService
}

// NewTaskService creates a new TaskService with the given storage backend.
func NewTaskService(store storage.Store) *TaskService {
	return &TaskService{
		store:    store,
		projects: NewProjectService(store),
	}
}

// Create creates a task inside projectID with completed=false. The parent
// project is resolved under the ownership gate first, so creating into a
// missing or unowned project fails with ErrNotFound either way.
func (s *TaskService) Create(ctx context.Context, projectID, requesterID, title string) (*models.Task, error) {
	if _, err := s.projects.GetOwned(ctx, projectID, requesterID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:     title,
		Completed: false,
		ProjectID: projectID,
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		slog.Error("CreateTask failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("Task created", "task_id", task.ID, "project_id", projectID)
	return task, nil
}

// ListByProject returns all tasks of projectID in insertion order, provided
// the requester owns the parent project. Fails with ErrNotFound otherwise.
func (s *TaskService) ListByProject(ctx context.Context, projectID, requesterID string) ([]*models.Task, error) {
	if _, err := s.projects.GetOwned(ctx, projectID, requesterID); err != nil {
		return nil, err
	}

	tasks, err := s.store.ListTasksByProject(ctx, projectID)
	if err != nil {
		slog.Error("ListTasks failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	slog.Info("ListTasks ok", "project_id", projectID, "count", len(tasks))
	return tasks, nil
}

// resolveOwned fetches a task together with its parent project's owner and
// checks the requester against it. The join happens in a single storage
// lookup, so the task and its owner are always a consistent pair.
func (s *TaskService) resolveOwned(ctx context.Context, taskID, requesterID string) (*models.Task, error) {
	task, ownerID, err := s.store.GetTaskWithProjectOwner(ctx, taskID)
	if err != nil {
		slog.Error("GetTask failed", "task_id", taskID, "error", err)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if ownerID != requesterID {
		return nil, ErrUnauthorized
	}
	return task, nil
}

// Update applies a partial update to a task. Fails with ErrNotFound if the
// task does not exist, and ErrUnauthorized if it exists but the requester
// does not own its parent project.
func (s *TaskService) Update(ctx context.Context, taskID, requesterID string, patch TaskPatch) (*models.Task, error) {
	task, err := s.resolveOwned(ctx, taskID, requesterID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := s.store.UpdateTask(ctx, task); err != nil {
		slog.Error("UpdateTask failed", "task_id", taskID, "error", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	slog.Info("Task updated", "task_id", taskID, "requester_id", requesterID)
	return task, nil
}

// Delete removes a task under the same gate as Update and returns the
// deleted record.
func (s *TaskService) Delete(ctx context.Context, taskID, requesterID string) (*models.Task, error) {
	task, err := s.resolveOwned(ctx, taskID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		slog.Error("DeleteTask failed", "task_id", taskID, "error", err)
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	slog.Info("Task deleted", "task_id", taskID, "requester_id", requesterID)
	return task, nil
}

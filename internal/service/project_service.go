package service

import (
	"context"
	"fmt"
	"log/slog"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

// ProjectPatch describes a partial update to a project. A nil field was not
// provided and leaves the stored value unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
}

// ProjectService handles project CRUD scoped to the requesting user's
// ownership. Every lookup goes through the (id, owner) gate, so a caller
// can never learn whether a project they do not own exists at all.
type ProjectService struct {
	store storage.Store
}

// NewProjectService creates a new ProjectService with the given storage backend.
func NewProjectService(store storage.Store) *ProjectService {
	return &ProjectService{store: store}
}

// Create creates a new project owned by ownerID. The owner is fixed
// permanently at creation.
func (s *ProjectService) Create(ctx context.Context, ownerID, name, description string) (*models.Project, error) {
	slog.Info("CreateProject request", "owner_id", ownerID, "name", name)

	project := &models.Project{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}

	if err := s.store.CreateProject(ctx, project); err != nil {
		slog.Error("CreateProject failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created", "project_id", project.ID, "owner_id", ownerID)
	return project, nil
}

// ListOwned returns all projects owned by ownerID in insertion order.
func (s *ProjectService) ListOwned(ctx context.Context, ownerID string) ([]*models.Project, error) {
	projects, err := s.store.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		slog.Error("ListProjects failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	slog.Info("ListProjects ok", "owner_id", ownerID, "count", len(projects))
	return projects, nil
}

// GetOwned retrieves a project if and only if requesterID owns it. Fails
// with ErrNotFound both when no such project exists and when it belongs to
// another user.
func (s *ProjectService) GetOwned(ctx context.Context, projectID, requesterID string) (*models.Project, error) {
	project, err := s.store.GetProjectByIDAndOwner(ctx, projectID, requesterID)
	if err != nil {
		slog.Error("GetProject failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, ErrNotFound
	}

	return project, nil
}

// Update applies a partial update to a project under the same ownership
// gate as GetOwned. Only provided fields change; an empty patch returns the
// project unchanged.
func (s *ProjectService) Update(ctx context.Context, projectID, requesterID string, patch ProjectPatch) (*models.Project, error) {
	project, err := s.GetOwned(ctx, projectID, requesterID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}

	if err := s.store.UpdateProject(ctx, project); err != nil {
		slog.Error("UpdateProject failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	slog.Info("Project updated", "project_id", projectID, "owner_id", requesterID)
	return project, nil
}

// Delete removes a project under the same ownership gate as GetOwned and
// returns the deleted record. The storage schema cascades the delete to all
// of the project's tasks in one atomic statement.
func (s *ProjectService) Delete(ctx context.Context, projectID, requesterID string) (*models.Project, error) {
	project, err := s.GetOwned(ctx, projectID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteProject(ctx, projectID); err != nil {
		slog.Error("DeleteProject failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	slog.Info("Project deleted", "project_id", projectID, "owner_id", requesterID)
	return project, nil
}

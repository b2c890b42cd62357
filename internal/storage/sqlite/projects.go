package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/models"
)

// CreateProject inserts a new project into the database.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO projects (id, name, description, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.OwnerID,
		project.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// ListProjectsByOwner returns all projects owned by the given user in
// insertion order. No pagination; callers get the full list.
func (s *SQLiteStore) ListProjectsByOwner(ctx context.Context, ownerID string) ([]*models.Project, error) {
	query := `
		SELECT id, name, description, owner_id, created_at
		FROM projects
		WHERE owner_id = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.OwnerID,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// GetProjectByIDAndOwner retrieves a project only if it is owned by ownerID.
// A project that does not exist and a project owned by another user both
// come back as (nil, nil); the caller cannot tell the two apart.
func (s *SQLiteStore) GetProjectByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Project, error) {
	query := `
		SELECT id, name, description, owner_id, created_at
		FROM projects
		WHERE id = ? AND owner_id = ?
	`

	project := &models.Project{}
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.OwnerID,
		&project.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Missing or not owned
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// UpdateProject writes the project's mutable fields (name, description).
// The owner reference is immutable and never written after creation.
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?
		WHERE id = ?
	`

	_, err := s.db.ExecContext(ctx, query,
		project.Name,
		project.Description,
		project.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// DeleteProject removes a project by ID. With foreign keys enabled the
// delete cascades to the project's tasks in the same statement.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

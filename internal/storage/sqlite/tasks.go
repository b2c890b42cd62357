package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/models"
)

// CreateTask inserts a new task into the database.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO tasks (id, title, completed, project_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Completed,
		task.ProjectID,
		task.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// ListTasksByProject returns all tasks in the given project in insertion
// order.
func (s *SQLiteStore) ListTasksByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	query := `
		SELECT id, title, completed, project_id, created_at
		FROM tasks
		WHERE project_id = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Completed,
			&task.ProjectID,
			&task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// GetTaskWithProjectOwner retrieves a task joined with its parent project's
// owner. This single lookup is what lets the service layer distinguish "no
// such task" from "task exists but the requester does not own its project".
func (s *SQLiteStore) GetTaskWithProjectOwner(ctx context.Context, id string) (*models.Task, string, error) {
	query := `
		SELECT t.id, t.title, t.completed, t.project_id, t.created_at, p.owner_id
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = ?
	`

	task := &models.Task{}
	var ownerID string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Completed,
		&task.ProjectID,
		&task.CreatedAt,
		&ownerID,
	)

	if err == sql.ErrNoRows {
		return nil, "", nil // Task not found
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get task: %w", err)
	}

	return task, ownerID, nil
}

// UpdateTask writes the task's mutable fields (title, completed).
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, completed = ?
		WHERE id = ?
	`

	_, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Completed,
		task.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask removes a task by ID.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

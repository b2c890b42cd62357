// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"taskboard/internal/models"
)

// Store defines the interface for taskboard storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookup methods return (nil, nil) when no row matches; the service layer
// decides whether that is a not-found or an authorization failure. Each
// method executes as a single atomic statement, so ownership-filtered
// lookups and cascading deletes never observe partial state.
type Store interface {
	// CreateUser persists a new user. Fails if the email is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by exact email match.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateProject persists a new project. The ID and CreatedAt fields are
	// populated by the store if unset.
	CreateProject(ctx context.Context, project *models.Project) error

	// ListProjectsByOwner returns all projects owned by the given user, in
	// insertion order.
	ListProjectsByOwner(ctx context.Context, ownerID string) ([]*models.Project, error)

	// GetProjectByIDAndOwner retrieves a project only if it exists AND is
	// owned by ownerID. A missing project and a project owned by someone
	// else are indistinguishable to the caller.
	GetProjectByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Project, error)

	// UpdateProject writes the project's name and description by ID.
	UpdateProject(ctx context.Context, project *models.Project) error

	// DeleteProject removes a project by ID. The schema's foreign-key
	// cascade removes all of its tasks in the same statement.
	DeleteProject(ctx context.Context, id string) error

	// CreateTask persists a new task. The ID and CreatedAt fields are
	// populated by the store if unset.
	CreateTask(ctx context.Context, task *models.Task) error

	// ListTasksByProject returns all tasks in the given project, in
	// insertion order.
	ListTasksByProject(ctx context.Context, projectID string) ([]*models.Task, error)

	// GetTaskWithProjectOwner retrieves a task together with the owner of
	// its parent project, resolved in one joined lookup.
	GetTaskWithProjectOwner(ctx context.Context, id string) (*models.Task, string, error)

	// UpdateTask writes the task's title and completed flag by ID.
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}

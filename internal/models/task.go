package models

// Task represents a single unit of work inside a project.
// Tasks have no owner of their own; authorization resolves through the
// parent project's owner.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string `json:"id"`

	// Title is the short description of the task. Never empty.
	Title string `json:"title"`

	// Completed reports whether the task is done. Defaults to false.
	Completed bool `json:"completed"`

	// ProjectID references the parent project.
	ProjectID string `json:"project_id"`

	// CreatedAt is the Unix timestamp when the task was created.
	CreatedAt int64 `json:"created_at"`
}

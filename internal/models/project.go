package models

// Project represents a collection of tasks owned by a single user.
type Project struct {
	// ID is the unique identifier for the project (UUID format).
	ID string `json:"id"`

	// Name is the display name of the project. Never empty.
	Name string `json:"name"`

	// Description is optional free-form text about the project.
	Description string `json:"description,omitempty"`

	// OwnerID references the user who owns this project. Set at creation
	// and never changed afterwards.
	OwnerID string `json:"owner_id"`

	// CreatedAt is the Unix timestamp when the project was created.
	CreatedAt int64 `json:"created_at"`
}

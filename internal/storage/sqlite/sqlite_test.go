package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskboard/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "taskboard-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestUserStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser generates ID and timestamp", func(t *testing.T) {
		user := models.NewUser("Alice", "alice@example.com", "hash1")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == "" {
			t.Error("expected non-empty user ID")
		}
		if user.CreatedAt == 0 {
			t.Error("expected non-zero CreatedAt")
		}
	})

	t.Run("duplicate email fails the insert", func(t *testing.T) {
		first := models.NewUser("Bob", "bob@example.com", "hash1")
		if err := store.CreateUser(ctx, first); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		second := models.NewUser("Other Bob", "bob@example.com", "hash2")
		if err := store.CreateUser(ctx, second); err == nil {
			t.Error("expected error inserting duplicate email")
		}

		// The first record is unaffected
		got, err := store.GetUserByEmail(ctx, "bob@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.Name != "Bob" {
			t.Errorf("first user record changed: %+v", got)
		}
	})

	t.Run("email match is case-sensitive", func(t *testing.T) {
		user := models.NewUser("Carol", "Carol@example.com", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUserByEmail(ctx, "carol@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Error("expected no match for differently-cased email")
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil user, got %+v", got)
		}
	})
}

func TestProjectStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := models.NewUser("Owner", "owner@example.com", "hash")
	other := models.NewUser("Other", "other@example.com", "hash")
	if err := store.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := store.CreateUser(ctx, other); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	project := &models.Project{Name: "Launch", Description: "v1 launch", OwnerID: owner.ID}
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	t.Run("get by id and owner", func(t *testing.T) {
		got, err := store.GetProjectByIDAndOwner(ctx, project.ID, owner.ID)
		if err != nil {
			t.Fatalf("GetProjectByIDAndOwner failed: %v", err)
		}
		if got == nil || got.Name != "Launch" {
			t.Errorf("unexpected project: %+v", got)
		}
	})

	t.Run("other owner sees nothing", func(t *testing.T) {
		got, err := store.GetProjectByIDAndOwner(ctx, project.ID, other.ID)
		if err != nil {
			t.Fatalf("GetProjectByIDAndOwner failed: %v", err)
		}
		if got != nil {
			t.Error("expected nil for project owned by someone else")
		}
	})

	t.Run("list is scoped to owner", func(t *testing.T) {
		mine, err := store.ListProjectsByOwner(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListProjectsByOwner failed: %v", err)
		}
		if len(mine) != 1 {
			t.Errorf("expected 1 project, got %d", len(mine))
		}

		theirs, err := store.ListProjectsByOwner(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListProjectsByOwner failed: %v", err)
		}
		if len(theirs) != 0 {
			t.Errorf("expected 0 projects, got %d", len(theirs))
		}
	})

	t.Run("update writes name and description", func(t *testing.T) {
		project.Name = "Launch v2"
		project.Description = ""
		if err := store.UpdateProject(ctx, project); err != nil {
			t.Fatalf("UpdateProject failed: %v", err)
		}

		got, err := store.GetProjectByIDAndOwner(ctx, project.ID, owner.ID)
		if err != nil {
			t.Fatalf("GetProjectByIDAndOwner failed: %v", err)
		}
		if got.Name != "Launch v2" || got.Description != "" {
			t.Errorf("update not applied: %+v", got)
		}
	})
}

func TestTaskStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := models.NewUser("Owner", "owner@example.com", "hash")
	if err := store.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	project := &models.Project{Name: "Launch", OwnerID: owner.ID}
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	task := &models.Task{Title: "Write plan", ProjectID: project.ID}
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	t.Run("joined lookup resolves the project owner", func(t *testing.T) {
		got, ownerID, err := store.GetTaskWithProjectOwner(ctx, task.ID)
		if err != nil {
			t.Fatalf("GetTaskWithProjectOwner failed: %v", err)
		}
		if got == nil || got.Title != "Write plan" {
			t.Errorf("unexpected task: %+v", got)
		}
		if ownerID != owner.ID {
			t.Errorf("owner: expected %s, got %s", owner.ID, ownerID)
		}
		if got.Completed {
			t.Error("new task should not be completed")
		}
	})

	t.Run("joined lookup returns nil for unknown task", func(t *testing.T) {
		got, ownerID, err := store.GetTaskWithProjectOwner(ctx, "nonexistent-id")
		if err != nil {
			t.Fatalf("GetTaskWithProjectOwner failed: %v", err)
		}
		if got != nil || ownerID != "" {
			t.Errorf("expected no result, got %+v / %q", got, ownerID)
		}
	})

	t.Run("deleting the project cascades to its tasks", func(t *testing.T) {
		if err := store.DeleteProject(ctx, project.ID); err != nil {
			t.Fatalf("DeleteProject failed: %v", err)
		}

		got, _, err := store.GetTaskWithProjectOwner(ctx, task.ID)
		if err != nil {
			t.Fatalf("GetTaskWithProjectOwner failed: %v", err)
		}
		if got != nil {
			t.Errorf("task survived project delete: %+v", got)
		}

		tasks, err := store.ListTasksByProject(ctx, project.ID)
		if err != nil {
			t.Fatalf("ListTasksByProject failed: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected 0 tasks after cascade, got %d", len(tasks))
		}
	})
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/models"
	"taskboard/internal/storage"
	"taskboard/internal/storage/sqlite"
)

// newTestStore creates a temp-file SQLite store that is cleaned up with the
// test.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "taskboard-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func newTestAuthService(t *testing.T, store storage.Store) *AuthService {
	t.Helper()
	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(authenticator, jwtManager, slog.Default())
}

// createTestUser inserts a user directly, bypassing registration. Used by
// project/task tests that only need an identity, not real credentials.
func createTestUser(t *testing.T, store storage.Store, name, email string) *models.User {
	t.Helper()
	user := models.NewUser(name, email, "irrelevant-hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	svc := newTestAuthService(t, store)
	ctx := context.Background()

	first, err := svc.Register(ctx, "Alice", "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = svc.Register(ctx, "Impostor", "alice@x.com", "secret2")
	if !errors.Is(err, auth.ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}

	// The first user record is unaffected
	got, err := store.GetUserByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got == nil || got.ID != first.ID || got.Name != "Alice" {
		t.Errorf("first user record changed: %+v", got)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newTestStore(t)
	svc := newTestAuthService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "alice@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(ctx, "alice@x.com", "wrong-password")
	_, _, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	if !errors.Is(wrongPass, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, auth.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Error("login failures must carry no distinguishing signal")
	}
}

func TestLoginIssuesToken(t *testing.T) {
	store := newTestStore(t)
	svc := newTestAuthService(t, store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Alice", "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, token, err := svc.Login(ctx, "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("user: expected %s, got %s", registered.ID, user.ID)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
}

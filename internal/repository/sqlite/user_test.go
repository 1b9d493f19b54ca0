package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, repo *sqlite.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     "user-" + email,
		Email:        email,
		PasswordHash: "hash",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create %s: %v", email, err)
	}
	return user
}

func TestUserRepository_Create(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))

	user := &domain.User{
		Username:     "asha",
		Email:        "asha@example.com",
		PasswordHash: "hashedpw",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "dup@example.com")

	err := repo.Create(context.Background(), &domain.User{
		Username:     "other",
		Email:        "dup@example.com",
		PasswordHash: "hash2",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))
	user := createTestUser(t, repo, "byid@example.com")

	found, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, found.Email)
	}
	if found.Username != user.Username {
		t.Fatalf("expected username %q, got %q", user.Username, found.Username)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))
	user := createTestUser(t, repo, "byemail@example.com")

	found, err := repo.GetByEmail(context.Background(), "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, found.ID)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))

	_, err := repo.GetByEmail(context.Background(), "nonexistent@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createTestUser(t, repo, "before@example.com")

	user.Username = "renamed"
	user.Email = "after@example.com"
	if err := repo.UpdateProfile(ctx, user); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Username != "renamed" || found.Email != "after@example.com" {
		t.Fatalf("profile not updated: %+v", found)
	}
}

func TestUserRepository_UpdateProfile_DuplicateEmail(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "taken@example.com")
	user := createTestUser(t, repo, "mine@example.com")

	user.Email = "taken@example.com"
	err := repo.UpdateProfile(context.Background(), user)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createTestUser(t, repo, "pw@example.com")

	if err := repo.UpdatePassword(ctx, user.ID, "newhash"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.PasswordHash != "newhash" {
		t.Fatalf("expected password hash to change, got %q", found.PasswordHash)
	}
}

func TestUserRepository_UpdatePassword_NotFound(t *testing.T) {
	repo := sqlite.NewUserRepository(newTestDB(t))

	err := repo.UpdatePassword(context.Background(), 99999, "hash")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

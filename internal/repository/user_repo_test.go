package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"skiresort/internal/domain"
)

func newUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	repo := NewUserRepository(newTestDB(t))
	if err := repo.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repo
}

func TestUserCreateAndGetByUsername(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	u := &domain.User{Username: "alice", PasswordHash: "hashed", Role: domain.RoleUser}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned user id")
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername returned error: %v", err)
	}
	if got.PasswordHash != "hashed" || got.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1", Role: domain.RoleUser}); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}

	err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2", Role: domain.RoleUser})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserExistsByUsername(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h", Role: domain.RoleUser})

	exists, err := repo.ExistsByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("ExistsByUsername returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected alice to exist")
	}

	exists, _ = repo.ExistsByUsername(ctx, "bob")
	if exists {
		t.Fatal("expected bob to not exist")
	}
}

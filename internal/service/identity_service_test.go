package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/example/remindcal/internal/store"
)

func newTestIdentity(t *testing.T) (*IdentityService, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st := store.New(db, zap.NewNop())
	if err := st.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	return NewIdentityService(st, zap.NewNop()), st
}

func TestSignup_OK(t *testing.T) {
	identity, st := newTestIdentity(t)

	user, err := identity.Signup(context.Background(), "alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.UserID == 0 {
		t.Fatal("expected store-assigned user id")
	}

	// Пароль хранится только как bcrypt-хеш.
	if user.Password == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if len(st.Users()) != 1 {
		t.Fatalf("expected 1 user in snapshot, got %d", len(st.Users()))
	}
}

func TestSignup_Validation(t *testing.T) {
	identity, _ := newTestIdentity(t)
	ctx := context.Background()

	if _, err := identity.Signup(ctx, " ", "a@b.c", "pw"); !errors.Is(err, ErrEmptyUsername) {
		t.Fatalf("expected ErrEmptyUsername, got %v", err)
	}
	if _, err := identity.Signup(ctx, "alice", "", "pw"); !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
	if _, err := identity.Signup(ctx, "alice", "a@b.c", ""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	identity, _ := newTestIdentity(t)
	ctx := context.Background()

	if _, err := identity.Signup(ctx, "bob", "bob@example.com", "pw"); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if _, err := identity.Signup(ctx, "bob", "bob2@example.com", "pw"); err == nil {
		t.Fatal("expected unique constraint error")
	}
}

func TestEnsureDefaultUser_Idempotent(t *testing.T) {
	identity, st := newTestIdentity(t)
	ctx := context.Background()

	if err := identity.EnsureDefaultUser(ctx); err != nil {
		t.Fatalf("EnsureDefaultUser: %v", err)
	}
	if err := identity.EnsureDefaultUser(ctx); err != nil {
		t.Fatalf("second EnsureDefaultUser: %v", err)
	}

	users := st.Users()
	if len(users) != 1 || users[0].Username != "default" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

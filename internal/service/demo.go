package service

import (
	"context"
	"fmt"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

// Demo account available out of the box.
const (
	DemoUsername = "demo"
	DemoPassword = "demo123"
	DemoEmail    = "demo@example.com"
)

// DemoUser builds the demo credential record, hashing the password once.
func DemoUser(h PasswordHasher) (models.User, error) {
	hash, err := h.Hash(DemoPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("hash demo password: %w", err)
	}
	return models.User{Username: DemoUsername, Email: DemoEmail, PasswordHash: hash}, nil
}

// NewDemoUserStore returns an in-memory store holding only the demo user.
// Build it once at startup and share it; it is read-only afterwards.
func NewDemoUserStore(h PasswordHasher) (*repository.MemoryUserStore, error) {
	u, err := DemoUser(h)
	if err != nil {
		return nil, err
	}
	return repository.NewMemoryUserStore(u), nil
}

// SeedDemoUser inserts the demo user unless a user with that name exists.
// It reports whether a row was created.
func SeedDemoUser(ctx context.Context, users repository.UserRepo, h PasswordHasher) (bool, error) {
	existing, err := users.FindByUsername(ctx, DemoUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	u, err := DemoUser(h)
	if err != nil {
		return false, err
	}
	if _, err := users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

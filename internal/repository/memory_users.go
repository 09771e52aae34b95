package repository

import (
	"context"

	"todo_backend/internal/models"
)

// MemoryUserStore is a read-only, in-process CredentialStore. It is filled
// once at construction and never mutated, so reads need no locking.
type MemoryUserStore struct {
	users map[string]models.User
}

var _ CredentialStore = (*MemoryUserStore)(nil)

// NewMemoryUserStore indexes the given users by username. Later duplicates win.
func NewMemoryUserStore(users ...models.User) *MemoryUserStore {
	m := make(map[string]models.User, len(users))
	for i, u := range users {
		if u.ID == 0 {
			u.ID = i + 1
		}
		m[u.Username] = u
	}
	return &MemoryUserStore{users: m}
}

// FindByUsername returns a copy of the stored record, or (nil, nil).
func (s *MemoryUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"todo_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	mockCredentialStore
	created   []models.User
	createErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, u models.User) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, u)
	if f.users == nil {
		f.users = map[string]models.User{}
	}
	u.ID = len(f.created)
	f.users[u.Username] = u
	return u.ID, nil
}

func TestNewDemoUserStore_HashesOnce(t *testing.T) {
	h := &countingHasher{PasswordHasher: fastHasher()}
	store, err := NewDemoUserStore(h)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		u, err := store.FindByUsername(context.Background(), DemoUsername)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, DemoEmail, u.Email)
		assert.True(t, h.PasswordHasher.Verify(DemoPassword, u.PasswordHash))
	}
	assert.Equal(t, 1, h.hashCalls)

	missing, err := store.FindByUsername(context.Background(), "nouser")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeedDemoUser(t *testing.T) {
	repo := &fakeUserRepo{}
	h := fastHasher()

	created, err := SeedDemoUser(context.Background(), repo, h)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.created, 1)
	assert.Equal(t, DemoUsername, repo.created[0].Username)
	assert.NotEqual(t, DemoPassword, repo.created[0].PasswordHash)

	created, err = SeedDemoUser(context.Background(), repo, h)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.created, 1)
}

func TestSeedDemoUser_Errors(t *testing.T) {
	lookupErr := errors.New("lookup failed")
	repo := &fakeUserRepo{mockCredentialStore: mockCredentialStore{err: lookupErr}}
	_, err := SeedDemoUser(context.Background(), repo, fastHasher())
	assert.ErrorIs(t, err, lookupErr)

	createErr := errors.New("insert failed")
	repo = &fakeUserRepo{createErr: createErr}
	_, err = SeedDemoUser(context.Background(), repo, fastHasher())
	assert.ErrorIs(t, err, createErr)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todo_backend/internal/models"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// CredentialStore looks up credential records by exact, case-sensitive username.
// A missing user is reported as (nil, nil).
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserRepo is a writable CredentialStore.
type UserRepo interface {
	CredentialStore
	Create(ctx context.Context, u models.User) (int, error)
}

type TodoRepo interface {
	Create(ctx context.Context, t models.Todo) (models.Todo, error)
	List(ctx context.Context, skip, limit int) ([]models.Todo, error)
	Get(ctx context.Context, id int64) (models.Todo, error)
	Update(ctx context.Context, id int64, p models.TodoPatch, now time.Time) (models.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type ActivityRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Todos    TodoRepo
	Activity ActivityRepo
	Users    UserRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Todos:    NewTodoSQLite(db),
		Activity: NewActivitySQLite(db),
		Users:    NewUserRepository(db),
	}
}

package service

import (
	"context"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

// Authorization is everything other layers need from the credential and
// token service.
type Authorization interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	IssueToken(claims Claims) (string, error)
	VerifyToken(token string) (*Claims, error)
	Login(ctx context.Context, username, password string) (TokenResponse, error)
}

// Todos exposes CRUD over todo items.
type Todos interface {
	Create(ctx context.Context, in TodoInput) (models.Todo, error)
	List(ctx context.Context, skip, limit int) ([]models.Todo, error)
	Get(ctx context.Context, id int64) (models.Todo, error)
	Update(ctx context.Context, id int64, p models.TodoPatch) (models.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityLog exposes the append-only audit trail with filtering access.
type ActivityLog interface {
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

// Compute exposes the stateless numeric helpers.
type Compute interface {
	Linspace(xMin, xMax float64) (Series, error)
	Series(name string, xMin, xMax float64) (Series, error)
	Double(v int64) (int64, error)
	Half(v float64) float64
	Repeat(v string) string
}

// Service aggregates all sub-services. Fields are accessed by name
// (h.services.Todos.List) since Todos and ActivityLog share method names.
type Service struct {
	Authorization
	Todos
	ActivityLog
	Compute
}

// NewService wires the repository layer into concrete services. The auth
// service is built by the caller because it depends on config and on the
// selected credential store.
func NewService(repos *repository.Repository, auth Authorization, activity *ActivityService) *Service {
	return &Service{
		Authorization: auth,
		Todos:         NewTodoService(repos.Todos, activity),
		ActivityLog:   activity,
		Compute:       NewComputeService(),
	}
}

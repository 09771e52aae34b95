package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

// Field limits for todo items.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000

	DefaultListLimit = 100
	MaxListLimit     = 1000
)

var (
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInvalidTodo       = errors.New("invalid todo")
	ErrInvalidPagination = errors.New("invalid pagination: skip must be >= 0 and limit in 1..1000")
)

type TodoService struct {
	repo     repository.TodoRepo
	activity ActivityRecorder
	now      func() time.Time
}

func NewTodoService(repo repository.TodoRepo, activity ActivityRecorder) *TodoService {
	return &TodoService{repo: repo, activity: activity, now: time.Now}
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < 1 || n > maxTitleLen {
		return fmt.Errorf("%w: title must be 1..%d characters", ErrInvalidTodo, maxTitleLen)
	}
	return nil
}

func validateDescription(desc *string) error {
	if desc != nil && utf8.RuneCountInString(*desc) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidTodo, maxDescriptionLen)
	}
	return nil
}

func (s *TodoService) Create(ctx context.Context, in TodoInput) (models.Todo, error) {
	if err := validateTitle(in.Title); err != nil {
		return models.Todo{}, err
	}
	if err := validateDescription(in.Description); err != nil {
		return models.Todo{}, err
	}

	t, err := s.repo.Create(ctx, models.Todo{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return models.Todo{}, err
	}
	s.record(ctx, models.EventTodoCreate, "todo created", t.ID)
	return t, nil
}

func (s *TodoService) List(ctx context.Context, skip, limit int) ([]models.Todo, error) {
	if skip < 0 || limit < 1 || limit > MaxListLimit {
		return nil, ErrInvalidPagination
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *TodoService) Get(ctx context.Context, id int64) (models.Todo, error) {
	t, err := s.repo.Get(ctx, id)
	return t, mapTodoErr(err)
}

// Update applies only the fields present in p.
func (s *TodoService) Update(ctx context.Context, id int64, p models.TodoPatch) (models.Todo, error) {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return models.Todo{}, err
		}
	}
	if err := validateDescription(p.Description); err != nil {
		return models.Todo{}, err
	}

	t, err := s.repo.Update(ctx, id, p, s.now())
	if err != nil {
		return models.Todo{}, mapTodoErr(err)
	}
	if !p.IsEmpty() {
		s.record(ctx, models.EventTodoUpdate, "todo updated", id)
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapTodoErr(err)
	}
	s.record(ctx, models.EventTodoDelete, "todo deleted", id)
	return nil
}

func (s *TodoService) record(ctx context.Context, typ, desc string, id int64) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ctx, typ, desc, map[string]any{"todo_id": id})
}

func mapTodoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTodoNotFound
	}
	return err
}

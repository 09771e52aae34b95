package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"todo_backend/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite {
	return &TodoSQLite{db: db}
}

var _ TodoRepo = (*TodoSQLite)(nil)

const (
	todoColumns = `id, title, description, completed, created_at, updated_at`

	insertTodoSQL     = `INSERT INTO todos (title, description, completed, created_at) VALUES (?, ?, ?, ?)`
	selectTodoByIDSQL = `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	listTodosSQL      = `SELECT ` + todoColumns + ` FROM todos ORDER BY id ASC LIMIT ? OFFSET ?`
	deleteTodoSQL     = `DELETE FROM todos WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var (
		t       models.Todo
		desc    sql.NullString
		updated sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &desc, &t.Completed, &t.CreatedAt, &updated); err != nil {
		return models.Todo{}, err
	}
	if desc.Valid {
		d := desc.String
		t.Description = &d
	}
	t.CreatedAt = t.CreatedAt.UTC()
	if updated.Valid {
		u := updated.Time.UTC()
		t.UpdatedAt = &u
	}
	return t, nil
}

// Create inserts the todo and returns it with its generated id.
// A zero CreatedAt is set to the current UTC time.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) (models.Todo, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}
	t.UpdatedAt = nil

	res, err := r.db.ExecContext(ctx, insertTodoSQL, t.Title, t.Description, t.Completed, t.CreatedAt)
	if err != nil {
		return models.Todo{}, fmt.Errorf("insert todo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Todo{}, fmt.Errorf("get last insert id for todo: %w", err)
	}
	t.ID = id
	return t, nil
}

// List returns at most limit todos after skipping skip rows, ordered by id.
func (r *TodoSQLite) List(ctx context.Context, skip, limit int) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, listTodosSQL, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, limit)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return out, nil
}

// Get returns ErrNotFound when no row has the id.
func (r *TodoSQLite) Get(ctx context.Context, id int64) (models.Todo, error) {
	t, err := scanTodo(r.db.QueryRowContext(ctx, selectTodoByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrNotFound
		}
		return models.Todo{}, fmt.Errorf("select todo %d: %w", id, err)
	}
	return t, nil
}

// Update applies the non-nil fields of p and stamps updated_at with now.
// An empty patch only checks existence.
func (r *TodoSQLite) Update(ctx context.Context, id int64, p models.TodoPatch, now time.Time) (models.Todo, error) {
	if p.IsEmpty() {
		return r.Get(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *p.Completed)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now.UTC(), id)

	q := "UPDATE todos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Todo{}, fmt.Errorf("rows affected for todo %d: %w", id, err)
	}
	if n == 0 {
		return models.Todo{}, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete returns ErrNotFound when no row has the id.
func (r *TodoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteTodoSQL, id)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for todo %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

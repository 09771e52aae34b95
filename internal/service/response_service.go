package service

import "time"

// ActivityFilter supports history filtering by time range and type.
type ActivityFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "LOGIN", "LOGIN_FAILED", "TODO_CREATE", "TODO_UPDATE", "TODO_DELETE"
}

// TodoInput is a validated create request.
type TodoInput struct {
	Title       string
	Description *string
	Completed   bool
}

package models

import "time"

// Activity event types.
const (
	EventLogin       = "LOGIN"
	EventLoginFailed = "LOGIN_FAILED"
	EventTodoCreate  = "TODO_CREATE"
	EventTodoUpdate  = "TODO_UPDATE"
	EventTodoDelete  = "TODO_DELETE"
)

// ActivityEvent is a single audit log entry.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // LOGIN | LOGIN_FAILED | TODO_CREATE | TODO_UPDATE | TODO_DELETE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

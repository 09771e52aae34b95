package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"todo_backend/internal/models"
	"todo_backend/internal/service"
)

func sampleTodo() models.Todo {
	desc := "2 liters"
	return models.Todo{
		ID:          7,
		Title:       "Buy milk",
		Description: &desc,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestTodoHandlers_Create(t *testing.T) {
	todos := &mockTodos{todo: sampleTodo()}
	r := newTestRouter(&service.Service{Todos: todos})

	w := doRequest(r, http.MethodPost, "/todos", `{"title":"Buy milk","description":"2 liters"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != 7 || got.Title != "Buy milk" || got.UpdatedAt != nil {
		t.Fatalf("unexpected todo: %+v", got)
	}
	if todos.lastInput.Title != "Buy milk" || todos.lastInput.Description == nil || todos.lastInput.Completed {
		t.Fatalf("unexpected input: %+v", todos.lastInput)
	}
}

func TestTodoHandlers_CreateValidation(t *testing.T) {
	r := newTestRouter(&service.Service{Todos: &mockTodos{}})
	bodies := []string{
		`{}`,
		`{"title":""}`,
		fmt.Sprintf(`{"title":%q}`, strings.Repeat("t", 201)),
		fmt.Sprintf(`{"title":"ok","description":%q}`, strings.Repeat("d", 1001)),
		`{"title":"ok","completed":"yes"}`,
	}
	for _, body := range bodies {
		if w := doRequest(r, http.MethodPost, "/todos", body, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("body %.40s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestTodoHandlers_List(t *testing.T) {
	todos := &mockTodos{list: []models.Todo{sampleTodo()}}
	r := newTestRouter(&service.Service{Todos: todos})

	w := doRequest(r, http.MethodGet, "/todos", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
	if todos.lastSkip != 0 || todos.lastLimit != service.DefaultListLimit {
		t.Fatalf("defaults not applied: skip=%d limit=%d", todos.lastSkip, todos.lastLimit)
	}
	var got []models.Todo
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(got))
	}

	doRequest(r, http.MethodGet, "/todos?skip=10&limit=5", "", nil)
	if todos.lastSkip != 10 || todos.lastLimit != 5 {
		t.Fatalf("query not forwarded: skip=%d limit=%d", todos.lastSkip, todos.lastLimit)
	}

	for _, q := range []string{"skip=-1", "skip=x", "limit=0", "limit=1001", "limit=abc"} {
		if w := doRequest(r, http.MethodGet, "/todos?"+q, "", nil); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
	}

	// empty result is an empty array, not null
	todos.list = nil
	w = doRequest(r, http.MethodGet, "/todos", "", nil)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected [], got %s", w.Body.String())
	}

	todos.listErr = errors.New("db down")
	if w := doRequest(r, http.MethodGet, "/todos", "", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestTodoHandlers_GetUpdateDelete(t *testing.T) {
	todos := &mockTodos{todo: sampleTodo()}
	r := newTestRouter(&service.Service{Todos: todos})

	if w := doRequest(r, http.MethodGet, "/todos/7", "", nil); w.Code != http.StatusOK || todos.lastID != 7 {
		t.Fatalf("get status=%d id=%d", w.Code, todos.lastID)
	}

	w := doRequest(r, http.MethodPut, "/todos/7", `{"completed":true}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d, body=%s", w.Code, w.Body.String())
	}
	p := todos.lastPatch
	if p.Title != nil || p.Description != nil || p.Completed == nil || !*p.Completed {
		t.Fatalf("expected completed-only patch, got %+v", p)
	}

	if w := doRequest(r, http.MethodPut, "/todos/7", `{"title":""}`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("empty title update: expected 400, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/todos/7", "", nil)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("delete status=%d body=%q", w.Code, w.Body.String())
	}

	for _, path := range []string{"/todos/abc", "/todos/0", "/todos/-3"} {
		if w := doRequest(r, http.MethodGet, path, "", nil); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestTodoHandlers_NotFound(t *testing.T) {
	r := newTestRouter(&service.Service{Todos: &mockTodos{err: service.ErrTodoNotFound}})

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"title":"x"}`},
		{http.MethodDelete, ""},
	} {
		w := doRequest(r, tc.method, "/todos/99", tc.body, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", tc.method, w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["detail"] != "Todo not found" {
			t.Fatalf("%s: unexpected body %v", tc.method, body)
		}
	}
}

func TestTodoHandlers_Protected(t *testing.T) {
	auth := &mockAuth{claims: validClaims()}
	todos := &mockTodos{list: []models.Todo{}}
	r := newTestRouter(&service.Service{Authorization: auth, Todos: todos}, WithProtectedTodos(true))

	w := doRequest(r, http.MethodGet, "/todos", "", nil)
	if w.Code != http.StatusUnauthorized || w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected 401 with challenge, got %d", w.Code)
	}
	if todos.listCalls != 0 {
		t.Fatalf("handler must not run without a token")
	}

	if w := doRequest(r, http.MethodGet, "/todos", "", authHeader("good")); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}

package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"todo_backend/internal/models"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginResp service.TokenResponse
	loginErr  error
	claims    *service.Claims
	verifyErr error

	lastLoginUsername string
	lastLoginPassword string
	lastVerifyToken   string
}

func (m *mockAuth) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	return nil, service.ErrInvalidCredentials
}
func (m *mockAuth) IssueToken(claims service.Claims) (string, error) {
	return "", nil
}
func (m *mockAuth) VerifyToken(token string) (*service.Claims, error) {
	m.lastVerifyToken = token
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	return m.claims, nil
}
func (m *mockAuth) Login(ctx context.Context, username, password string) (service.TokenResponse, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginResp, m.loginErr
}

type mockTodos struct {
	mu sync.Mutex

	todo    models.Todo
	list    []models.Todo
	err     error
	listErr error

	lastInput service.TodoInput
	lastPatch models.TodoPatch
	lastID    int64
	lastSkip  int
	lastLimit int
	listCalls int
}

func (m *mockTodos) Create(ctx context.Context, in service.TodoInput) (models.Todo, error) {
	m.lastInput = in
	return m.todo, m.err
}
func (m *mockTodos) List(ctx context.Context, skip, limit int) ([]models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSkip, m.lastLimit = skip, limit
	m.listCalls++
	return m.list, m.listErr
}
func (m *mockTodos) Get(ctx context.Context, id int64) (models.Todo, error) {
	m.lastID = id
	return m.todo, m.err
}
func (m *mockTodos) Update(ctx context.Context, id int64, p models.TodoPatch) (models.Todo, error) {
	m.lastID = id
	m.lastPatch = p
	return m.todo, m.err
}
func (m *mockTodos) Delete(ctx context.Context, id int64) error {
	m.lastID = id
	return m.err
}

type mockActivityLog struct {
	resp   []models.ActivityEvent
	err    error
	filter service.ActivityFilter
	calls  int
}

func (m *mockActivityLog) List(ctx context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.calls++
	m.filter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts...)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func validClaims() *service.Claims {
	c := service.NewClaims("demo")
	c.Email = "demo@example.com"
	return &c
}

// doRequest serves a single request; body may be empty.
func doRequest(r http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

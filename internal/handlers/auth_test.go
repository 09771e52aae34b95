package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"todo_backend/internal/service"
)

func TestAuthHandlers_Login(t *testing.T) {
	auth := &mockAuth{loginResp: service.TokenResponse{AccessToken: "tok123", TokenType: "bearer", ExpiresIn: 1800}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doRequest(r, http.MethodPost, "/auth/login", `{"username":"demo","password":"demo123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var got service.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.AccessToken != "tok123" || got.TokenType != "bearer" || got.ExpiresIn != 1800 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if auth.lastLoginUsername != "demo" || auth.lastLoginPassword != "demo123" {
		t.Fatalf("credentials not forwarded: %q / %q", auth.lastLoginUsername, auth.lastLoginPassword)
	}
}

func TestAuthHandlers_LoginFailures(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		err        error
		wantCode   int
		wantBearer bool
	}{
		{"invalid credentials", `{"username":"demo","password":"wrong"}`, service.ErrInvalidCredentials, http.StatusUnauthorized, true},
		{"store failure", `{"username":"demo","password":"demo123"}`, errors.New("db down"), http.StatusInternalServerError, false},
		{"missing password", `{"username":"demo"}`, nil, http.StatusBadRequest, false},
		{"wrong type", `{"username":1,"password":"x"}`, nil, http.StatusBadRequest, false},
		{"not json", `username=demo`, nil, http.StatusBadRequest, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{loginErr: tc.err}})
			w := doRequest(r, http.MethodPost, "/auth/login", tc.body, nil)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if got := w.Header().Get("WWW-Authenticate") == "Bearer"; got != tc.wantBearer {
				t.Fatalf("WWW-Authenticate present=%v, want %v", got, tc.wantBearer)
			}
			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if _, ok := m["detail"]; !ok {
				t.Fatalf("expected detail in body, got %s", w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_Me(t *testing.T) {
	auth := &mockAuth{claims: validClaims()}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doRequest(r, http.MethodGet, "/auth/me", "", authHeader("good"))
	if w.Code != http.StatusOK {
		t.Fatalf("me status=%d, body=%s", w.Code, w.Body.String())
	}
	var got MeResponse
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Username != "demo" || got.Email != "demo@example.com" || got.Message == "" {
		t.Fatalf("unexpected body: %+v", got)
	}
	if auth.lastVerifyToken != "good" {
		t.Fatalf("expected token to be verified, got %q", auth.lastVerifyToken)
	}

	w = doRequest(r, http.MethodGet, "/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

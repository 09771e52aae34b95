package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"todo_backend/internal/metrics"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil, WithMetrics(m))
	r.Use(h.requestLogger)
	r.GET("/secure", h.RequireBearer, func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "sub": claims.Subject})
	})
	return r
}

func TestRequireBearer_Rejections(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		verifyErr  error
		wantDetail string
		outcome    string
	}{
		{"missing header", "", nil, errMissingAuth, metrics.OutcomeMissing},
		{"invalid scheme", "Token abc", nil, errInvalidScheme, metrics.OutcomeInvalid},
		{"bearer without token", "Bearer", nil, errInvalidScheme, metrics.OutcomeInvalid},
		{"bearer with blank token", "Bearer   ", nil, errInvalidScheme, metrics.OutcomeInvalid},
		{"bad signature", "Bearer forged", fmt.Errorf("%w: signature", service.ErrInvalidToken), errBadToken, metrics.OutcomeInvalid},
		{"expired", "Bearer old", fmt.Errorf("%w: exp", service.ErrTokenExpired), errBadToken, metrics.OutcomeExpired},
		{"missing subject", "Bearer nosub", service.ErrMissingSubject, errBadToken, metrics.OutcomeNoSubject},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.New()
			auth := &mockAuth{claims: validClaims(), verifyErr: tc.verifyErr}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth}, m)

			h := http.Header{}
			if tc.header != "" {
				h.Set("Authorization", tc.header)
			}
			w := doRequest(r, http.MethodGet, "/secure", "", h)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Fatalf("expected WWW-Authenticate: Bearer, got %q", got)
			}
			var body map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["detail"] != tc.wantDetail {
				t.Fatalf("detail=%q, want %q", body["detail"], tc.wantDetail)
			}
			if got := testutil.ToFloat64(m.TokenVerifications.WithLabelValues(tc.outcome)); got != 1 {
				t.Fatalf("expected one %s token check, got %v", tc.outcome, got)
			}
		})
	}
}

func TestRequireBearer_Success(t *testing.T) {
	m := metrics.New()
	auth := &mockAuth{claims: validClaims()}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth}, m)

	w := doRequest(r, http.MethodGet, "/secure", "", authHeader("abc.def.ghi"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["sub"] != "demo" {
		t.Fatalf("claims not propagated: %v", body)
	}
	if auth.lastVerifyToken != "abc.def.ghi" {
		t.Fatalf("token passed to verifier = %q", auth.lastVerifyToken)
	}
	if got := testutil.ToFloat64(m.TokenVerifications.WithLabelValues(metrics.OutcomeSuccess)); got != 1 {
		t.Fatalf("expected one successful token check, got %v", got)
	}

	// scheme is case-insensitive
	h := http.Header{}
	h.Set("Authorization", "bearer abc.def.ghi")
	if w := doRequest(r, http.MethodGet, "/secure", "", h); w.Code != http.StatusOK {
		t.Fatalf("lowercase scheme: expected 200, got %d", w.Code)
	}
}

func TestRequestLogger_RequestIDAndMetrics(t *testing.T) {
	m := metrics.New()
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: &mockAuth{claims: validClaims()}}, m)

	w := doRequest(r, http.MethodGet, "/secure", "", nil)
	if w.Header().Get(headerRequestID) == "" {
		t.Fatalf("expected generated request id")
	}

	h := http.Header{}
	h.Set(headerRequestID, "req-42")
	w = doRequest(r, http.MethodGet, "/secure", "", h)
	if got := w.Header().Get(headerRequestID); got != "req-42" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/secure", "401")); got != 2 {
		t.Fatalf("expected 2 requests counted, got %v", got)
	}

	doRequest(r, http.MethodGet, "/nowhere", "", nil)
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched route to be counted, got %v", got)
	}
}

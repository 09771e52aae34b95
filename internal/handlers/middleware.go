package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"todo_backend/internal/metrics"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxClaims       = "claims"
	headerRequestID = "X-Request-ID"

	errMissingAuth   = "Not authenticated"
	errInvalidScheme = "Invalid authentication scheme"
	errBadToken      = "Could not validate credentials"
)

// RequireBearer rejects requests without a valid bearer token. On success the
// verified claims are stored under the "claims" context key.
func (h *Handler) RequireBearer(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		h.metrics.ObserveTokenCheck(metrics.OutcomeMissing)
		h.unauthorized(c, errMissingAuth)
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		h.metrics.ObserveTokenCheck(metrics.OutcomeInvalid)
		h.unauthorized(c, errInvalidScheme)
		return
	}

	claims, err := h.services.Authorization.VerifyToken(token)
	if err != nil {
		h.metrics.ObserveTokenCheck(tokenOutcome(err))
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "path", c.FullPath(), "err", err)
		}
		h.unauthorized(c, errBadToken)
		return
	}

	h.metrics.ObserveTokenCheck(metrics.OutcomeSuccess)
	c.Set(ctxClaims, claims)
	c.Next()
}

func (h *Handler) unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

func tokenOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return metrics.OutcomeExpired
	case errors.Is(err, service.ErrMissingSubject):
		return metrics.OutcomeNoSubject
	default:
		return metrics.OutcomeInvalid
	}
}

// claimsFrom returns the claims set by RequireBearer.
func claimsFrom(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok && claims != nil
}

// requestLogger tags every request with an id and records access logs and
// request metrics.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	reqID := c.GetHeader(headerRequestID)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Header(headerRequestID, reqID)

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	elapsed := time.Since(start)

	h.metrics.ObserveRequest(c.Request.Method, route, status, elapsed)
	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", elapsed,
		)
	}
}

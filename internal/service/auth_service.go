package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo_backend/internal/metrics"
	"todo_backend/internal/models"
	"todo_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL applies when AuthConfig.TTL is zero.
const DefaultTokenTTL = 30 * time.Minute

// Domain errors for auth flows. The HTTP layer turns every one of them into 401.
var (
	// ErrInvalidCredentials covers both an unknown user and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers bad signatures, wrong algorithms and malformed tokens.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMissingSubject = errors.New("token has no subject")

	ErrEmptySecret        = errors.New("signing secret is empty")
	ErrUnsupportedSigning = errors.New("signing algorithm must be HMAC (HS256, HS384, HS512)")
)

// dummyPassword is hashed once so that lookups of unknown users still pay for
// one bcrypt comparison.
const dummyPassword = "timing-equalizer-not-a-real-password"

type AuthConfig struct {
	Secret    string
	Algorithm string
	TTL       time.Duration
}

// AuthService verifies credentials and issues and verifies signed access tokens.
// It holds no mutable state after construction and is safe for concurrent use.
type AuthService struct {
	store    repository.CredentialStore
	hasher   PasswordHasher
	activity ActivityRecorder
	metrics  *metrics.Metrics

	secret    []byte
	method    *jwt.SigningMethodHMAC
	ttl       time.Duration
	now       func() time.Time
	dummyHash string
}

type AuthOption func(*AuthService)

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// WithActivity records LOGIN / LOGIN_FAILED events.
func WithActivity(rec ActivityRecorder) AuthOption {
	return func(s *AuthService) { s.activity = rec }
}

func WithMetrics(m *metrics.Metrics) AuthOption {
	return func(s *AuthService) { s.metrics = m }
}

// NewAuthService validates the signing configuration up front; a misconfigured
// secret or algorithm is a startup error, never a silent default.
func NewAuthService(store repository.CredentialStore, hasher PasswordHasher, cfg AuthConfig, opts ...AuthOption) (*AuthService, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedSigning, cfg.Algorithm)
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	if ttl < 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	s := &AuthService{
		store:     store,
		hasher:    hasher,
		secret:    []byte(cfg.Secret),
		method:    method,
		ttl:       ttl,
		now:       time.Now,
		dummyHash: dummy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL is the lifetime given to tokens issued by IssueToken.
func (s *AuthService) TTL() time.Duration { return s.ttl }

// Authenticate returns the user only if the password matches. An unknown
// username and a wrong password both yield ErrInvalidCredentials; other
// errors come from the credential store.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		s.hasher.Verify(password, s.dummyHash)
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken signs claims with the configured lifetime.
func (s *AuthService) IssueToken(claims Claims) (string, error) {
	return s.IssueTokenWithTTL(claims, s.ttl)
}

// IssueTokenWithTTL signs claims expiring ttl from now. A non-positive ttl
// produces a token that is already expired. The caller supplies the subject.
func (s *AuthService) IssueTokenWithTTL(claims Claims, ttl time.Duration) (string, error) {
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	now := s.now()
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}

	signed, err := jwt.NewWithClaims(s.method, &claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, algorithm, expiry and subject, in that order.
// Validity depends only on the token, the secret and the clock.
func (s *AuthService) VerifyToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

func (s *AuthService) keyFunc(token *jwt.Token) (any, error) {
	// WithValidMethods already pins the algorithm; this guards the key type.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}

// Login authenticates and, on success, issues a bearer token whose subject
// is the username.
func (s *AuthService) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.metrics.ObserveLogin(metrics.OutcomeInvalid)
			s.record(ctx, models.EventLoginFailed, "login rejected", map[string]any{"username": username})
		} else {
			s.metrics.ObserveLogin(metrics.OutcomeError)
		}
		return TokenResponse{}, err
	}

	claims := NewClaims(u.Username)
	claims.Email = u.Email
	token, err := s.IssueToken(claims)
	if err != nil {
		s.metrics.ObserveLogin(metrics.OutcomeError)
		return TokenResponse{}, err
	}

	s.metrics.ObserveLogin(metrics.OutcomeSuccess)
	s.record(ctx, models.EventLogin, "login succeeded", map[string]any{"username": u.Username})
	return TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(s.ttl / time.Second),
	}, nil
}

func (s *AuthService) record(ctx context.Context, typ, desc string, meta any) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ctx, typ, desc, meta)
}

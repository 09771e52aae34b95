package service

import "github.com/golang-jwt/jwt/v5"

// Claims is the access token payload. Subject and ExpiresAt are required;
// IssuedAt and ID (jti) are filled in at issuance when empty.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	// Extra holds application specific claims under a single key so they can
	// never shadow the registered ones.
	Extra map[string]any `json:"ext,omitempty"`
}

// NewClaims is a convenience for the common subject-only case.
func NewClaims(subject string) Claims {
	return Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

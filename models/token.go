package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes access from refresh tokens inside the claims.
type TokenKind string

const (
	AccessTokenKind  TokenKind = "access"
	RefreshTokenKind TokenKind = "refresh"
)

// TokenClaims are the claims carried by legacy-keeper tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"kind,omitempty"`
}

// Token wraps a JWT with accessors used by the session service (expiry) and
// the sandbox backend (issuing and checking).
type Token struct {
	*jwt.Token `json:"-"`
	TokenClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// GetUserID returns the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting user id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting user id from token: empty subject")
	}
	return sub, nil
}

// ExpiresWithin reports whether the token expires before now+d. Tokens
// without an exp claim never expire.
func (t *Token) ExpiresWithin(now time.Time, d time.Duration) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Add(d).Before(t.ExpiresAt.Time)
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

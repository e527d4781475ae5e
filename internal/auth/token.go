package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoCredential = errors.New("no credential available")

// TokenSource supplies the bearer credential for authenticated calls. The
// storefront holds no ambient session state; whoever owns the login flow
// injects one of these into the components that need it.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a fixed bearer token. An empty token means "not logged in".
type StaticToken string

func (s StaticToken) Token() (string, error) {
	if s == "" {
		return "", ErrNoCredential
	}
	if Expired(string(s), time.Now()) {
		return "", ErrNoCredential
	}
	return string(s), nil
}

// Expired reports whether token carries an exp claim in the past. The
// signature is not checked here; the backend stays the authority on token
// validity. Opaque (non-JWT) tokens are never considered expired.
func Expired(token string, now time.Time) bool {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestStaticToken(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := StaticToken("").Token()
		assert.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("Opaque", func(t *testing.T) {
		got, err := StaticToken("opaque-session").Token()
		require.NoError(t, err)
		assert.Equal(t, "opaque-session", got)
	})

	t.Run("ExpiredJWT", func(t *testing.T) {
		token := signedToken(t, time.Now().Add(-time.Hour))
		_, err := StaticToken(token).Token()
		assert.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("ValidJWT", func(t *testing.T) {
		token := signedToken(t, time.Now().Add(time.Hour))
		got, err := StaticToken(token).Token()
		require.NoError(t, err)
		assert.Equal(t, token, got)
	})
}

func TestExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, Expired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, Expired(signedToken(t, now.Add(time.Minute)), now))

	// Opaque tokens and JWTs without exp are never expired locally.
	assert.False(t, Expired("not-a-jwt", now))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u"}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	assert.False(t, Expired(noExp, now))
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret-key-0123456789", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, expiresAt, err := m.Generate("123456")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "123456", claims.UserID)
		assert.Equal(t, "123456", claims.Subject)
	})

	t.Run("empty user id", func(t *testing.T) {
		_, _, err := m.Generate("")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		token, _, err := NewJWTManager("another-secret-key-012345", time.Hour).Generate("123456")
		require.NoError(t, err)
		_, err = m.Validate(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := NewJWTManager("test-secret-key-0123456789", -time.Minute).Generate("123456")
		require.NoError(t, err)
		_, err = m.Validate(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := &Claims{UserID: "123456", RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret-key-0123456789"))
		require.NoError(t, err)
		_, err = m.Validate(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestSecretAuthenticator(t *testing.T) {
	_, err := HashSecret("short")
	require.ErrorIs(t, err, ErrWeakSecret)

	hash, err := HashSecret("front-end-shared-secret")
	require.NoError(t, err)

	a, err := NewSecretAuthenticator(hash)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.Authenticate(ctx, "front-end-shared-secret"))
	require.ErrorIs(t, a.Authenticate(ctx, "wrong-secret-value-xx"), ErrInvalidCredentials)

	_, err = NewSecretAuthenticator("not-a-hash")
	require.Error(t, err)
}

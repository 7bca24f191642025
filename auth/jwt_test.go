package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueJWT("66b1f0c2a44e5e3d9c1a2b3c", "admin", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "66b1f0c2a44e5e3d9c1a2b3c", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.Time.After(time.Now()))
}

func TestIssueJWTWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := IssueJWT("66b1f0c2a44e5e3d9c1a2b3c", "user", "u@example.com")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

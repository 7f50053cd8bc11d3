package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	issuedAt := time.Now().Add(-time.Minute).Truncate(time.Second)

	token, expiresAt, err := GenerateJWT("user-1", "executive", secret, issuedAt, time.Hour, "deskbook-test")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "executive", claims.Role)
	assert.Equal(t, "deskbook-test", claims.Issuer)
}

func TestParseJWT_Rejects(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	expired, _, err := GenerateJWT("user-1", "employee", secret, time.Now().Add(-2*time.Hour), time.Hour, "deskbook-test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, _, err := GenerateJWT("user-1", "employee", secret, time.Now(), time.Hour, "deskbook-test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "some-other-secret")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT("not-a-token", secret)
	assert.Error(t, err)
}

// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", "user", 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", "user", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(42, 1)
	require.NoError(t, err)

	userID, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestRefreshTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateRefreshToken(42, 1)
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	defer SetJWTSecret("your-secret-key-change-in-production")

	_, err = ValidateRefreshToken(token)
	assert.Error(t, err)
}

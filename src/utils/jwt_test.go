package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("507f1f77bcf86cd799439011", "somchai@example.com", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "somchai@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestParseJWTEmptyToken(t *testing.T) {
	claims, err := ParseJWT("")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWTGarbage(t *testing.T) {
	claims, err := ParseJWT("not.a.jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateJWT("id", "a@b.c", "admin")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	claims, err := ParseJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func setupTestConfig() {
	config.AppConfig = &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: time.Hour,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	setupTestConfig()

	token, err := GenerateJWT("user-1", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	setupTestConfig()

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	setupTestConfig()

	token, err := GenerateJWT("user-1", models.RoleUser)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	setupTestConfig()
	config.AppConfig.JWTExpiresIn = -time.Hour

	token, err := GenerateJWT("user-1", models.RoleUser)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

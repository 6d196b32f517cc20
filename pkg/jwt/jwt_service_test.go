package jwt

import (
	"GreenBite-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail(map[string]any{"user_id": "user-123"}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
}

func TestVerifyEmailTokenExpired(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail(map[string]any{"user_id": "user-123"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

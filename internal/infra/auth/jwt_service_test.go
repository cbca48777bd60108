package auth

import (
	"testing"
	"time"

	"gsale/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "seller")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	require.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "seller", accessClaims.Role)
	assert.Equal(t, TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	require.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role) // Refresh tokens don't carry a role
	assert.Equal(t, TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_access_secret_key"
	otherCfg.SecretKey.Refresh = "a_completely_different_refresh_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := otherService.GenerateTokens(uuid.New(), "buyer")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_TokenDurations(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		jwtService, err := NewJWTService(newTestJWTConfig())
		require.NoError(t, err)

		assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())
		assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
	})

	t.Run("configured", func(t *testing.T) {
		cfg := newTestJWTConfig()
		cfg.Auth = &config.AuthConfig{
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		}

		jwtService, err := NewJWTService(cfg)
		require.NoError(t, err)

		assert.Equal(t, 30*time.Minute, jwtService.GetAccessTokenDuration())
		assert.Equal(t, 24*time.Hour, jwtService.GetRefreshTokenDuration())
	})
}

package auth

import (
	"testing"
	"time"

	"backoffice/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_TokensAreUniquePerCall(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	first, err := jwtService.GenerateToken(1)
	require.NoError(t, err)
	second, err := jwtService.GenerateToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("some-other-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(7)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	concrete := svc.(*jwtService)
	concrete.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := concrete.GenerateToken(7)
	require.NoError(t, err)

	concrete.now = time.Now
	claims, err := concrete.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTokenWithoutUser(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestJWTConfig(secret))
	require.NoError(t, err)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	token, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

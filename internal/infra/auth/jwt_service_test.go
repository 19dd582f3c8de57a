package auth

import (
	"context"
	"testing"
	"time"

	"unifeast/config"
	"unifeast/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret, issuer string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Provider:  config.AuthProviderJWT,
			JWTSecret: secret,
			Issuer:    issuer,
			TokenTTL:  15 * time.Minute,
		},
	}
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", "unifeast"))
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.Identity{UserID: "user-1", Email: "user@campus.ac.uk"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{UserID: "user-1", Email: "user@campus.ac.uk"}, identity)
	assert.Equal(t, 15*time.Minute, svc.GetTokenDuration())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a", ""))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b", ""))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.Identity{UserID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", ""))
	require.NoError(t, err)

	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(&entity.Identity{UserID: "user-1"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	other, err := NewJWTService(newTestConfig("secret", "someone-else"))
	require.NoError(t, err)
	svc, err := NewJWTService(newTestConfig("secret", "unifeast"))
	require.NoError(t, err)

	token, err := other.GenerateToken(&entity.Identity{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", ""))
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_GenerateRequiresUserID(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", ""))
	require.NoError(t, err)

	_, err = svc.GenerateToken(&entity.Identity{Email: "anon@campus.ac.uk"})
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

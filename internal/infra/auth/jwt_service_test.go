package auth

import (
	"testing"
	"time"

	"medifinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) *JWTService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{Secret: secret, TokenTTL: time.Hour}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*JWTService)
}

func TestJWTGenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.GenerateToken("user-1", "jean.dupont@example.fr")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jean.dupont@example.fr", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-a")
	verifier := newTestTokenService(t, "secret-b")

	token, err := issuer.GenerateToken("user-1", "jean.dupont@example.fr")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{Secret: "test-secret", TokenTTL: -time.Minute}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-1", "jean.dupont@example.fr")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTTokenTTL(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	assert.Equal(t, time.Hour, svc.TokenTTL())
}

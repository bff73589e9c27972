package auth

import (
	"testing"

	"medifinder/config"
	"medifinder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	var hasher service.PasswordHasher = NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Check("secret123", hash))
	assert.Error(t, hasher.Check("wrong-password", hash))
	assert.Error(t, hasher.Check("secret123", "not-a-hash"))
}

func TestBcryptHasherClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	// every Hash call.
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Check("secret123", hash))
}

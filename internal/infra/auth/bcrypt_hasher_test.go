package auth

import (
	"testing"

	"guidematch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	hash, err := hasher.Hash("password123")

	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	first, err := hasher.Hash("password123")
	require.NoError(t, err)

	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password123", first))
	assert.True(t, hasher.Check("password123", second))
}

func TestBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("password123")

	require.NoError(t, err)
	assert.True(t, hasher.Check("password123", hash))
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("password123", "not-a-bcrypt-hash"))
}

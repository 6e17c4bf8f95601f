package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher := NewPasswordHasher(DefaultBcryptCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check(hash, "correct horse battery staple"))
	assert.False(t, hasher.Check(hash, "wrong password"))
	assert.False(t, hasher.Check(hash, ""))
}

func TestPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher(DefaultBcryptCost)

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	// Each call picks a fresh salt, so the hashes must differ even for the
	// same input.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(first, "password123"))
	assert.True(t, hasher.Check(second, "password123"))
}

func TestPasswordHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewPasswordHasher(DefaultBcryptCost)

	assert.False(t, hasher.Check("not-a-bcrypt-hash", "password123"))
	assert.False(t, hasher.Check("", "password123"))
}

func TestPasswordHasher_CostChangeKeepsOldHashesValid(t *testing.T) {
	old := NewPasswordHasher(4)
	hash, err := old.Hash("password123")
	require.NoError(t, err)

	// The cost is embedded in the hash, so raising the configured cost must
	// not invalidate existing credentials.
	assert.True(t, NewPasswordHasher(12).Check(hash, "password123"))
}

func TestNewPasswordHasher_ClampsInvalidCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{"zero", 0},
		{"negative", -1},
		{"above maximum", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewPasswordHasher(tt.cost)

			hash, err := hasher.Hash("password123")
			require.NoError(t, err)
			assert.True(t, hasher.Check(hash, "password123"))
		})
	}
}

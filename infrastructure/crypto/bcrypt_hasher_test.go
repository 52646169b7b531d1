package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Make("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, h.Check(hash, "secret-password"))
	assert.False(t, h.Check(hash, "wrong-password"))
	assert.False(t, h.Check("not-a-hash", "secret-password"))
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Make("same")
	require.NoError(t, err)
	second, err := h.Make("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	h := NewBcryptHasher(0).(*BcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcryptHasher(bcrypt.MaxCost + 1).(*BcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

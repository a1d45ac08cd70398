package cryptoutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("123")
	require.NoError(t, err)
	assert.NotEqual(t, "123", hash)

	assert.True(t, h.Verify(hash, "123"))
	assert.False(t, h.Verify(hash, "1234"))
	assert.False(t, h.Verify("not-a-hash", "123"))
}

func TestBcryptHasher_DistinctHashes(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "bcrypt salts must differ per call")
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.NotPanics(t, func() {
		h := NewBcryptHasher(-1)
		h.DummyVerify("whatever")
	})
}

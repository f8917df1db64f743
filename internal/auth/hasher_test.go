package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.NoError(t, h.Compare(hash, "pw123"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("pw123")
	require.NoError(t, err)
	second, err := h.Hash("pw123")
	require.NoError(t, err)

	// Same plaintext must not produce the same digest
	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Compare(first, "pw123"))
	assert.NoError(t, h.Compare(second, "pw123"))
}

func TestBcryptHasher_MalformedDigestFailsClosed(t *testing.T) {
	h := NewBcryptHasher(4)

	assert.Error(t, h.Compare("not-a-bcrypt-digest", "pw123"))
	assert.Error(t, h.Compare("", "pw123"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	// Out-of-range cost falls back to the bcrypt default
	h := NewBcryptHasher(0)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "pw123"))
}

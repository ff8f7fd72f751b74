package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "pw123", digest)

	assert.True(t, hasher.Check("pw123", digest))
	assert.False(t, hasher.Check("pw124", digest))
	assert.False(t, hasher.Check("", digest))
}

func TestBcryptHasher_SaltPerCall(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := NewBcryptHasher()

	// corrupt stored data must read as a mismatch, never panic or leak
	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("pw123", ""))
}

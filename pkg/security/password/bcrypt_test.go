package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NotContains(t, hash, "secret1")

	require.NoError(t, h.Compare(hash, "secret1"))
	require.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasherSalts(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

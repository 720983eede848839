package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesDifferentDigests(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "per-call salt should differ")
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct-horse", digest))
	assert.False(t, VerifyPassword("wrong-horse", digest))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("anything", ""))
}

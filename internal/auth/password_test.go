package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

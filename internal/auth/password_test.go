package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super_secret")
	require.NoError(t, err)
	assert.NotEqual(t, "super_secret", hash)

	assert.True(t, CheckPasswordHash("super_secret", hash))
	assert.False(t, CheckPasswordHash("wrong_secret", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

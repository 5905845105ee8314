package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateResetToken()
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.False(t, seen[token], "token generated twice")
		seen[token] = true
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	token, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Equal(t, HashToken(token), HashToken(token))
	assert.NotEqual(t, token, HashToken(token))
	assert.Len(t, HashToken(token), 64)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}

func TestJWTRoundTrip(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", 60))

	token, err := GenerateToken("user-1", "jobseeker")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jobseeker", claims.Role)

	_, err = ParseToken(token + "tampered")
	assert.Error(t, err)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Provider_VerifyAcceptsCorrectPassword(t *testing.T) {
	p := NewArgon2Provider()

	salt, verifier, err := p.Hash([]byte("12345"))
	require.NoError(t, err)
	require.NotEmpty(t, salt)
	require.NotEmpty(t, verifier)

	assert.True(t, p.Verify([]byte("12345"), salt, verifier))
}

func TestArgon2Provider_VerifyRejectsWrongPassword(t *testing.T) {
	p := NewArgon2Provider()

	salt, verifier, err := p.Hash([]byte("12345"))
	require.NoError(t, err)

	assert.False(t, p.Verify([]byte("54321"), salt, verifier))
}

func TestArgon2Provider_SaltsDiffer(t *testing.T) {
	p := NewArgon2Provider()

	salt1, _, err := p.Hash([]byte("pw"))
	require.NoError(t, err)
	salt2, _, err := p.Hash([]byte("pw"))
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
}

func TestToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)

	userID, err := GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestToken_WrongSecretRejected(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestToken_ExpiredRejected(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, secret)
	assert.Error(t, err)
}

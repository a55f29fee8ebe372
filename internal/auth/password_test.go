package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_DemoAccount(t *testing.T) {
	hash, err := HashPassword("demo123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "demo123", hash)
	assert.NoError(t, CheckPassword("demo123", hash))
	assert.ErrorIs(t, CheckPassword("Demo123", hash), ErrInvalidPassword)
	assert.ErrorIs(t, CheckPassword("", hash), ErrInvalidPassword)
}

func TestHashPassword_RaisesLowCost(t *testing.T) {
	// Config may leave AUTH_BCRYPT_COST at zero.
	hash, err := HashPassword("demo123", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHashPassword_Length(t *testing.T) {
	_, err := HashPassword(strings.Repeat("p", MaxPasswordLength), bcrypt.MinCost)
	assert.NoError(t, err)

	_, err = HashPassword(strings.Repeat("p", MaxPasswordLength+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("demo123", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPassword)
}

func TestGenerateSecret(t *testing.T) {
	first, err := GenerateSecret()
	require.NoError(t, err)
	second, err := GenerateSecret()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.Regexp(t, "^[0-9a-f]+$", first)
	assert.NotEqual(t, first, second)
}

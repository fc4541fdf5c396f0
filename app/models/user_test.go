package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	user, err := CreateUser("Alex Doe", "alex@example.edu", "secret123")
	require.NoError(t, err)

	assert.Equal(t, ROLE_USER, user.Role)
	assert.Equal(t, STATUS_ACTIVE, user.Status)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	t.Parallel()

	_, err := CreateUser("Al", "alex@example.edu", "secret123")
	assert.Error(t, err, "name shorter than 3 chars")

	_, err = CreateUser("Alex Doe", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("Alex Doe", "alex@example.edu", "short")
	assert.Error(t, err, "password shorter than 6 chars")
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	user := &User{}
	token, err := user.IssueToken()
	require.NoError(t, err)

	assert.Len(t, token, 64, "32 random bytes hex encoded")
	assert.Equal(t, HashToken(token), user.TokenHash)
	assert.NotNil(t, user.TokenIssuedAt)

	second, err := user.IssueToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, second, "token rotation must produce a fresh token")
	assert.NotEqual(t, HashToken(token), user.TokenHash, "old token hash must be replaced")
}

func TestHashTokenDeterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

func TestUserIsActive(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{Status: STATUS_ACTIVE}).IsActive())
	assert.False(t, (&User{Status: STATUS_DISABLED}).IsActive())
}

package auth

import (
	"testing"

	"github.com/Haris-56/coupon/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Generate("64f000000000000000000001", models.RoleEditor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.True(t, sess.IsAuth)
	assert.Equal(t, "64f000000000000000000001", sess.UserID)
	assert.Equal(t, models.RoleEditor, sess.Role)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	tokens := NewTokenService("test-secret")

	t.Run("Garbage", func(t *testing.T) {
		_, err := tokens.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenService("different-secret")
		token, err := other.Generate("user", models.RoleAdmin)
		require.NoError(t, err)

		_, err = tokens.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGuards(t *testing.T) {
	admin := Session{IsAuth: true, UserID: "a", Role: models.RoleAdmin}
	editor := Session{IsAuth: true, UserID: "e", Role: models.RoleEditor}
	user := Session{IsAuth: true, UserID: "u", Role: models.RoleUser}
	anonymous := Session{}

	assert.True(t, CanEdit(admin))
	assert.True(t, CanEdit(editor))
	assert.False(t, CanEdit(user))
	assert.False(t, CanEdit(anonymous))

	assert.True(t, CanDelete(admin))
	assert.False(t, CanDelete(editor))
	assert.False(t, CanDelete(user))
	assert.False(t, CanDelete(anonymous))

	// A forged role claim on an unauthenticated session must not pass.
	assert.False(t, CanEdit(Session{Role: models.RoleAdmin}))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}

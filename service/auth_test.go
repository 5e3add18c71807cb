package service

import (
	"testing"

	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-Horse-battery-staple-42"

func TestAuth(t *testing.T) {
	users := newFakeUserRepo()
	tokenizer := &fakeTokenizer{}
	auth, err := NewAuthService(users, tokenizer, &fakeLogger{})
	require.NoError(t, err)

	t.Run("Register", func(t *testing.T) {
		require.NoError(t, auth.Register("maze_runner", testPassword))
		assert.Len(t, users.users, 1)
	})

	t.Run("Register twice", func(t *testing.T) {
		err := auth.Register("maze_runner", testPassword)
		assert.ErrorIs(t, err, dmn.ErrUsernameConflict)
	})

	t.Run("Register weak password", func(t *testing.T) {
		err := auth.Register("someone", "1234")
		assert.ErrorIs(t, err, dmn.ErrWeakPassword)
	})

	t.Run("Sign in", func(t *testing.T) {
		user, token, err := auth.SignIn("maze_runner", testPassword)
		require.NoError(t, err)

		assert.Equal(t, "token", token)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, user.ID.String(), tokenizer.claims["userID"])
		assert.Equal(t, tokenLifetime, tokenizer.exp)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		_, _, err := auth.SignIn("maze_runner", "nope")
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)

		_, _, err = auth.SignIn("ghost", testPassword)
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
	})
}

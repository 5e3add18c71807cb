package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/maxfahl/Labyrinths/maze"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisMazeCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisMazeCache(client, 60)
	require.NoError(t, err)
	return c, mr
}

func TestRedisMazeCache(t *testing.T) {
	ctx := context.Background()
	m, err := maze.GenerateSquare(maze.Options{
		Width:         6,
		Height:        4,
		Complexity:    40,
		Seed:          "cache",
		StartPosition: maze.TopLeft,
		EndPosition:   maze.BottomRight,
	})
	require.NoError(t, err)

	t.Run("Miss", func(t *testing.T) {
		c, _ := setupCache(t)
		got, ok, err := c.Get(ctx, "maze:none")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Round trip", func(t *testing.T) {
		c, mr := setupCache(t)
		require.NoError(t, c.Set(ctx, "maze:one", m))

		got, ok, err := c.Get(ctx, "maze:one")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, m, got)
		assert.Equal(t, 60*time.Second, mr.TTL("maze:one"))
	})

	t.Run("Entries expire", func(t *testing.T) {
		c, mr := setupCache(t)
		require.NoError(t, c.Set(ctx, "maze:one", m))

		mr.FastForward(61 * time.Second)
		_, ok, err := c.Get(ctx, "maze:one")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Corrupt entry", func(t *testing.T) {
		c, mr := setupCache(t)
		require.NoError(t, mr.Set("maze:bad", "{"))

		_, ok, err := c.Get(ctx, "maze:bad")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("Invalid construction", func(t *testing.T) {
		_, err := NewRedisMazeCache(nil, 60)
		assert.Error(t, err)

		_, err = NewRedisMazeCache(redis.NewClient(&redis.Options{}), 0)
		assert.Error(t, err)
	})
}

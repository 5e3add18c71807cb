package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/maxfahl/Labyrinths/maze"
	"github.com/redis/go-redis/v9"
)

// RedisMazeCache stores generated mazes as JSON values with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMazeCache creates a cache on client whose entries live ttlSeconds.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid cache ttl: %d", ttlSeconds)
	}
	return &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Get loads the maze stored under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*maze.MazeData, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var m maze.MazeData
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, fmt.Errorf("decoding cached maze: %w", err)
	}
	return &m, true, nil
}

// Set stores m under key, refreshing its TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key string, m *maze.MazeData) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

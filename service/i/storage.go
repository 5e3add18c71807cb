package i

import (
	"context"

	"github.com/maxfahl/Labyrinths/maze"
)

// MazeCache stores generated mazes by key.
type MazeCache interface {
	// Get returns false without an error on a miss.
	Get(ctx context.Context, key string) (*maze.MazeData, bool, error)
	Set(ctx context.Context, key string, m *maze.MazeData) error
}

// SortedQueue is a scored set of members kept under one key.
type SortedQueue interface {
	// Enqueue adds member with score, replacing the score of an existing member.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Tops returns up to amount members with the highest scores, highest first.
	Tops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Trim drops the lowest scored members until at most keep remain.
	Trim(ctx context.Context, queueKey string, keep int64) error

	// Count returns the number of members under queueKey.
	Count(ctx context.Context, queueKey string) int64
}

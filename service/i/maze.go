package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/maze"
)

// MazeGenerator produces mazes for requests and remembers the latest ones.
type MazeGenerator interface {
	Generate(ctx context.Context, kind maze.Kind, opts maze.Options) (*dmn.Generation, error)
	Recent(ctx context.Context) ([]dmn.RecentMaze, error)
}

// HistoryKeeper manages the saved mazes of a user.
type HistoryKeeper interface {
	Save(ctx context.Context, userID uuid.UUID, req dmn.SavedMazeConfig) (*dmn.SavedMaze, error)
	List(ctx context.Context, userID uuid.UUID) ([]*dmn.SavedMaze, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*dmn.SavedMaze, *dmn.Generation, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

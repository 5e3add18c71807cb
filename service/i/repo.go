package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if the user does not exist.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if the user does not exist.
	ByUsername(username string) (*dmn.User, error)
}

// HistoryRepo persists saved mazes. Every lookup is scoped to one owner.
type HistoryRepo interface {
	// Save inserts the entry or replaces the one with the same ID.
	Save(ctx context.Context, saved *dmn.SavedMaze) error

	// ByID returns dmn.ErrSavedMazeNotFound when userID owns no entry with that ID.
	ByID(ctx context.Context, userID, id uuid.UUID) (*dmn.SavedMaze, error)

	// ByUser lists the owner's entries, newest first.
	ByUser(ctx context.Context, userID uuid.UUID) ([]*dmn.SavedMaze, error)

	// Delete returns dmn.ErrSavedMazeNotFound when nothing was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// Clear removes every entry of the owner and returns how many were removed.
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

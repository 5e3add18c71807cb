package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxfahl/Labyrinths/maze"
)

const (
	maxNameLength   = 64
	maxPreviewBytes = 512 * 1024
)

var (
	ErrEmptyName       = errors.New("saved maze name must not be empty")
	ErrNameTooLong     = errors.New("saved maze name too long")
	ErrPreviewTooLarge = errors.New("saved maze preview too large")
	ErrMissingOwner    = errors.New("saved maze must belong to a user")
)

// SavedMaze is one entry of a user's maze history. The maze itself is not
// stored; Options regenerate it exactly.
type SavedMaze struct {
	ID        uuid.UUID    `bson:"_id" json:"id"`
	UserID    uuid.UUID    `bson:"userId" json:"-"`
	Name      string       `bson:"name" json:"name"`
	Kind      maze.Kind    `bson:"kind" json:"kind"`
	Options   maze.Options `bson:"options" json:"options"`
	Preview   string       `bson:"preview" json:"preview"`
	Timestamp time.Time    `bson:"timestamp" json:"timestamp"`
}

// SavedMazeConfig holds the parameters for a new history entry.
type SavedMazeConfig struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Name    string
	Kind    maze.Kind
	Options maze.Options
	Preview string
}

// NewSavedMaze validates config and stamps the entry with the current time.
// A zero ID is replaced with a fresh one.
func NewSavedMaze(config SavedMazeConfig) (*SavedMaze, error) {
	name := strings.TrimSpace(config.Name)
	switch {
	case config.UserID == uuid.Nil:
		return nil, ErrMissingOwner
	case name == "":
		return nil, ErrEmptyName
	case len(name) > maxNameLength:
		return nil, ErrNameTooLong
	case len(config.Preview) > maxPreviewBytes:
		return nil, ErrPreviewTooLarge
	}

	id := config.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &SavedMaze{
		ID:        id,
		UserID:    config.UserID,
		Name:      name,
		Kind:      config.Kind,
		Options:   config.Options,
		Preview:   config.Preview,
		Timestamp: time.Now().UTC(),
	}, nil
}

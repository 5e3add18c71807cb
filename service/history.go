package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/service/i"
)

// maxPreviewDimension bounds the mazes that get a text preview when the
// client does not send one.
const maxPreviewDimension = 40

// History keeps the saved mazes of each user.
type History struct {
	repo      i.HistoryRepo
	generator i.MazeGenerator
	logger    i.Logger
}

// NewHistoryService creates a History service.
func NewHistoryService(repo i.HistoryRepo, generator i.MazeGenerator, logger i.Logger) (*History, error) {
	if repo == nil || generator == nil || logger == nil {
		return nil, errors.New("history service requires a repository, a generator and a logger")
	}
	return &History{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}, nil
}

// Save stores req for userID. The options are generated once so that only
// options that produce a maze are kept, with the seed filled in. Saving an
// existing ID replaces the entry but keeps its original position in the list.
func (h *History) Save(ctx context.Context, userID uuid.UUID, req dmn.SavedMazeConfig) (*dmn.SavedMaze, error) {
	gen, err := h.generator.Generate(ctx, req.Kind, req.Options)
	if err != nil {
		return nil, err
	}

	req.UserID = userID
	req.Kind = gen.Kind
	req.Options = gen.Options
	if req.Preview == "" && gen.Options.Width <= maxPreviewDimension && gen.Options.Height <= maxPreviewDimension {
		req.Preview = gen.Maze.String()
	}

	saved, err := dmn.NewSavedMaze(req)
	if err != nil {
		return nil, err
	}

	if req.ID != uuid.Nil {
		existing, err := h.repo.ByID(ctx, userID, req.ID)
		switch {
		case err == nil:
			saved.Timestamp = existing.Timestamp
		case !errors.Is(err, dmn.ErrSavedMazeNotFound):
			return nil, err
		}
	}

	if err := h.repo.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("saving maze %s: %w", saved.ID, err)
	}
	h.logger.Info(fmt.Sprintf("User %s saved maze %s (%q)", userID, saved.ID, saved.Name))
	return saved, nil
}

// List returns the saved mazes of userID, newest first.
func (h *History) List(ctx context.Context, userID uuid.UUID) ([]*dmn.SavedMaze, error) {
	return h.repo.ByUser(ctx, userID)
}

// Get returns a saved maze and the maze it regenerates to.
func (h *History) Get(ctx context.Context, userID, id uuid.UUID) (*dmn.SavedMaze, *dmn.Generation, error) {
	saved, err := h.repo.ByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	gen, err := h.generator.Generate(ctx, saved.Kind, saved.Options)
	if err != nil {
		return nil, nil, fmt.Errorf("regenerating saved maze %s: %w", id, err)
	}
	return saved, gen, nil
}

// Delete removes one saved maze.
func (h *History) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return h.repo.Delete(ctx, userID, id)
}

// Clear removes every saved maze of userID.
func (h *History) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := h.repo.Clear(ctx, userID)
	if err != nil {
		return 0, err
	}
	h.logger.Info(fmt.Sprintf("User %s cleared %d saved mazes", userID, n))
	return n, nil
}

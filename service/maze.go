package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/maze"
	"github.com/maxfahl/Labyrinths/service/i"
)

const (
	defaultRecentLimit  = 20
	defaultMaxDimension = 200
	recentFeedKey       = "mazes:recent"
	cacheKeyFmt         = "maze:%s:%016x"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)

// MazeOptions configures a MazeService.
type MazeOptions struct {
	MaxDimension int   // largest accepted width or height
	RecentLimit  int64 // entries kept in the recent feed
}

// MazeService generates mazes, caches them and keeps a feed of recent requests.
type MazeService struct {
	cache  i.MazeCache
	recent i.SortedQueue
	logger i.Logger
	opts   MazeOptions
	now    func() time.Time
}

// NewMazeService creates a MazeService. Zero options fall back to defaults.
func NewMazeService(cache i.MazeCache, recent i.SortedQueue, logger i.Logger, opts MazeOptions) (*MazeService, error) {
	if cache == nil || recent == nil {
		return nil, errors.New("maze service requires a cache and a recent feed")
	}
	if logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}

	return &MazeService{
		cache:  cache,
		recent: recent,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}, nil
}

// Generate returns the maze for kind and opts. An empty seed is replaced with
// a random one, which is reported back in the result so the maze can be
// generated again.
func (s *MazeService) Generate(ctx context.Context, kind maze.Kind, opts maze.Options) (*dmn.Generation, error) {
	if kind == "" {
		kind = maze.KindSquare
	}
	if opts.Width > s.opts.MaxDimension || opts.Height > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, opts.Width, opts.Height, s.opts.MaxDimension)
	}
	if opts.Seed == "" {
		opts.Seed = maze.Seed(uuid.NewString())
	}

	key := cacheKey(kind, opts)
	m, cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading cached maze %s: %v", key, err))
	}

	if !cached {
		m, err = maze.Generate(kind, opts)
		if err != nil {
			return nil, err
		}
		if len(m.Warnings) > 0 {
			s.logger.Warning(fmt.Sprintf("Generated %s maze %dx%d seed %q with fallbacks: %s",
				kind, opts.Width, opts.Height, opts.Seed, strings.Join(m.Warnings, "; ")))
		}
		if err := s.cache.Set(ctx, key, m); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching maze %s: %v", key, err))
		}
	}

	stats, err := maze.Analyze(m)
	if err != nil {
		return nil, err
	}

	s.remember(ctx, kind, opts)

	return &dmn.Generation{
		Kind:    kind,
		Options: opts,
		Maze:    m,
		Stats:   stats,
		Cached:  cached,
	}, nil
}

// Recent returns the latest generation requests, newest first.
func (s *MazeService) Recent(ctx context.Context) ([]dmn.RecentMaze, error) {
	members, err := s.recent.Tops(ctx, recentFeedKey, s.opts.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("reading recent mazes: %w", err)
	}

	result := make([]dmn.RecentMaze, 0, len(members))
	for _, member := range members {
		var entry dmn.RecentMaze
		if err := json.Unmarshal([]byte(member), &entry); err != nil {
			s.logger.Warning(fmt.Sprintf("Skipping malformed recent entry: %v", err))
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

// remember pushes a request onto the recent feed. Failures are logged only;
// the feed is best effort.
func (s *MazeService) remember(ctx context.Context, kind maze.Kind, opts maze.Options) {
	at := s.now().UTC()
	member, err := json.Marshal(dmn.RecentMaze{Kind: kind, Options: opts, GeneratedAt: at})
	if err != nil {
		s.logger.Error(fmt.Sprintf("Encoding recent entry: %v", err))
		return
	}

	if err := s.recent.Enqueue(ctx, recentFeedKey, float64(at.UnixMilli()), string(member)); err != nil {
		s.logger.Warning(fmt.Sprintf("Recording recent maze: %v", err))
		return
	}
	if err := s.recent.Trim(ctx, recentFeedKey, s.opts.RecentLimit); err != nil {
		s.logger.Warning(fmt.Sprintf("Trimming recent mazes: %v", err))
	}
}

// cacheKey identifies the maze produced by kind and opts.
func cacheKey(kind maze.Kind, opts maze.Options) string {
	raw, _ := json.Marshal(opts)
	return fmt.Sprintf(cacheKeyFmt, kind, xxhash.Sum64(raw))
}

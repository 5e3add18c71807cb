// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/maxfahl/Labyrinths/maze"
)

// Defaults applied to fields missing from a request.
const (
	DefaultWidth         = 20
	DefaultHeight        = 20
	DefaultComplexity    = 50
	DefaultWallThickness = 4
	DefaultStart         = maze.TopLeft
	DefaultEnd           = maze.BottomRight
)

// MazeRequest is the body of a generation request. Omitted fields take the
// defaults above. An omitted or empty seed means the server picks a fresh
// random seed and returns it; it is not the literal "" seed, so two requests
// with "seed": "" give different mazes. Send the returned seed to replay one.
type MazeRequest struct {
	Type          maze.Kind      `json:"type" binding:"omitempty,oneof=square polar"`
	Width         *int           `json:"width"`
	Height        *int           `json:"height"`
	Complexity    *int           `json:"complexity"`
	WallThickness *int           `json:"wallThickness"`
	Seed          maze.Seed      `json:"seed"`
	StartPosition maze.Placement `json:"startPosition"`
	EndPosition   maze.Placement `json:"endPosition"`
}

// Kind returns the requested maze kind, square when omitted.
func (r MazeRequest) Kind() maze.Kind {
	if r.Type == "" {
		return maze.KindSquare
	}
	return r.Type
}

// Options converts the request into engine options.
func (r MazeRequest) Options() maze.Options {
	opts := maze.Options{
		Width:         valueOr(r.Width, DefaultWidth),
		Height:        valueOr(r.Height, DefaultHeight),
		Complexity:    valueOr(r.Complexity, DefaultComplexity),
		WallThickness: valueOr(r.WallThickness, DefaultWallThickness),
		Seed:          r.Seed,
		StartPosition: r.StartPosition,
		EndPosition:   r.EndPosition,
	}

	start, end := DefaultStart, DefaultEnd
	if r.Kind() == maze.KindPolar {
		start, end = maze.Center, maze.Outer
	}
	if opts.StartPosition == "" {
		opts.StartPosition = start
	}
	if opts.EndPosition == "" {
		opts.EndPosition = end
	}
	return opts
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

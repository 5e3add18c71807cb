package domain

import (
	"time"

	"github.com/maxfahl/Labyrinths/maze"
)

// Generation is a generated maze together with the options that reproduce it.
// Options.Seed is always set, even when the request left it empty.
type Generation struct {
	Kind    maze.Kind      `json:"kind"`
	Options maze.Options   `json:"options"`
	Maze    *maze.MazeData `json:"maze"`
	Stats   maze.Stats     `json:"stats"`
	Cached  bool           `json:"cached"`
}

// RecentMaze is one entry of the public feed of recent generations.
type RecentMaze struct {
	Kind        maze.Kind    `json:"kind"`
	Options     maze.Options `json:"options"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

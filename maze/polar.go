package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// GeneratePolar builds a round maze of opts.Width sectors by opts.Height rings
// with a randomized Prim's algorithm and solves it. Braiding does not apply to
// polar mazes; opts.Complexity is only range checked.
func GeneratePolar(opts Options) (*MazeData, error) {
	topo, err := NewTopology(KindPolar, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if used, ok := clampComplexity(opts.Complexity); !ok {
		warnings = append(warnings, complexityWarning(opts.Complexity, used))
	}

	rng := NewStream(string(opts.Seed))
	grid := newGrid(topo)
	pl := &placer{topo: topo, rng: rng}
	start, end := pl.resolve(opts.StartPosition, opts.EndPosition)
	warnings = append(warnings, pl.warnings...)

	carvePolar(grid, start.pos, rng)

	// Global entrance at the start, exit at the end, whatever the carving did.
	grid.openWall(start.pos, Inward)
	grid.openWall(end.pos, Outward)

	walls := extractWalls(grid)
	solution, err := solve(grid, start.pos, end.pos)
	if err != nil {
		return nil, fmt.Errorf("solving polar maze: %w", err)
	}

	return newMazeData(grid, walls, start.pos, end.pos, solution, warnings), nil
}

// frontierEntry is an unvisited cell next to the carved region, with the
// carved cell it was reached from and the direction of the step.
type frontierEntry struct {
	cell Position
	from Position
	dir  Direction
}

// carvePolar carves a spanning tree from start with a randomized Prim's
// algorithm. Duplicate frontier entries are allowed and skipped when popped.
func carvePolar(g *Grid, start Position, rng *Stream) {
	visited := mapset.New[Position]()
	var frontier []frontierEntry

	grow := func(p Position) {
		for _, m := range g.neighbors(p) {
			if !visited.Has(m.to) {
				frontier = append(frontier, frontierEntry{cell: m.to, from: p, dir: m.dir})
			}
		}
	}

	visited.Put(start)
	grow(start)

	for len(frontier) > 0 {
		idx := rng.Intn(len(frontier))
		entry := frontier[idx]
		frontier = append(frontier[:idx], frontier[idx+1:]...)

		if visited.Has(entry.cell) {
			continue
		}

		g.openWall(entry.from, entry.dir)
		visited.Put(entry.cell)
		grow(entry.cell)
	}
}

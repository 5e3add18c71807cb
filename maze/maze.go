/*
Package maze generates, solves and renders procedural mazes.

Two topologies are supported: square grids carved with a randomized depth-first
search, and polar (round) grids of rings and sectors carved with a randomized
Prim's algorithm. Generation is deterministic: the seed in Options drives a
single Stream that every random choice is drawn from, so equal Options always
produce identical mazes.

Square mazes can be braided: the Complexity option (1..100) controls how many
dead ends are opened into loops after carving. The solution is the shortest
path between the resolved start and end cells.
*/
package maze

import "fmt"

// MazeData is the result of one generation call. It is never modified after
// it is returned.
type MazeData struct {
	Kind     Kind          `json:"kind"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Grid     [][]Cell      `json:"grid"`
	Walls    []WallSegment `json:"walls"`
	Start    *Position     `json:"start"`
	End      *Position     `json:"end"`
	Solution []Position    `json:"solution"`
	Warnings []string      `json:"warnings,omitempty"` // fallbacks applied to the options
}

// Generate builds a maze of the given kind.
func Generate(kind Kind, opts Options) (*MazeData, error) {
	switch kind {
	case KindSquare:
		return GenerateSquare(opts)
	case KindPolar:
		return GeneratePolar(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}

func newMazeData(g *Grid, walls []WallSegment, start, end Position, solution []Position, warnings []string) *MazeData {
	return &MazeData{
		Kind:     g.topo.Kind(),
		Width:    g.topo.Width(),
		Height:   g.topo.Height(),
		Grid:     g.cells,
		Walls:    walls,
		Start:    &start,
		End:      &end,
		Solution: solution,
		Warnings: warnings,
	}
}

// grid wraps the maze cells for read-only traversal.
func (m *MazeData) grid() (*Grid, error) {
	topo, err := NewTopology(m.Kind, m.Width, m.Height)
	if err != nil {
		return nil, err
	}
	return gridFromCells(topo, m.Grid), nil
}

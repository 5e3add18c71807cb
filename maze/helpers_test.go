package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareOptions(width, height int, seed string, start, end Placement, complexity int) Options {
	return Options{
		Width:         width,
		Height:        height,
		Complexity:    complexity,
		WallThickness: 2,
		Seed:          Seed(seed),
		StartPosition: start,
		EndPosition:   end,
	}
}

// requireWallConservation checks that every interior wall has the same state
// on both of its sides.
func requireWallConservation(t *testing.T, m *MazeData) {
	t.Helper()
	g, err := m.grid()
	require.NoError(t, err)

	for y := range g.cells {
		for x := range g.cells[y] {
			p := Position{X: x, Y: y}
			for _, d := range g.topo.Directions() {
				n, ok := g.topo.Neighbor(p, d)
				if !ok {
					continue
				}
				require.Equalf(t, g.hasWall(p, d), g.hasWall(n, g.topo.Opposite(d)),
					"wall %s of %v disagrees with wall %s of %v", d, p, g.topo.Opposite(d), n)
			}
		}
	}
}

// requireValidSolution checks that the solution runs from start to end
// through open passages only.
func requireValidSolution(t *testing.T, m *MazeData) {
	t.Helper()
	require.NotNil(t, m.Start)
	require.NotNil(t, m.End)
	require.NotEmpty(t, m.Solution)
	assert.Equal(t, *m.Start, m.Solution[0])
	assert.Equal(t, *m.End, m.Solution[len(m.Solution)-1])

	g, err := m.grid()
	require.NoError(t, err)
	for i := 1; i < len(m.Solution); i++ {
		from, to := m.Solution[i-1], m.Solution[i]
		connected := false
		for _, mv := range g.passages(from) {
			if mv.to == to {
				connected = true
				break
			}
		}
		require.Truef(t, connected, "solution step %v -> %v is not an open passage", from, to)
	}
}

// openPath carves the given cells as a corridor in a fully walled grid.
func openPath(g *Grid, path ...Position) {
	for i := 1; i < len(path); i++ {
		for _, m := range g.neighbors(path[i-1]) {
			if m.to == path[i] {
				g.openWall(m.from, m.dir)
				break
			}
		}
	}
}

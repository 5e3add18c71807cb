package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("Fully walled grid", func(t *testing.T) {
		g := squareGrid(t, 3, 2)
		stats, err := Analyze(&MazeData{Kind: KindSquare, Width: 3, Height: 2, Grid: g.cells})
		require.NoError(t, err)

		assert.Equal(t, Stats{Cells: 6, Components: 6}, stats)
	})

	t.Run("One loop", func(t *testing.T) {
		g := squareGrid(t, 2, 2)
		openPath(g,
			Position{X: 0, Y: 0}, Position{X: 0, Y: 1},
			Position{X: 1, Y: 1}, Position{X: 1, Y: 0},
			Position{X: 0, Y: 0},
		)

		stats, err := Analyze(&MazeData{Kind: KindSquare, Width: 2, Height: 2, Grid: g.cells})
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Passages)
		assert.Equal(t, 1, stats.Components)
		assert.Equal(t, 1, stats.Loops)
		assert.Equal(t, 0, stats.DeadEnds)
	})

	t.Run("Generated maze", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(7, 5, "stats", TopLeft, BottomRight, 100))
		require.NoError(t, err)

		stats, err := Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 35, stats.Cells)
		assert.Equal(t, 34, stats.Passages)
		assert.Equal(t, len(m.Solution), stats.SolutionLength)
		assert.Greater(t, stats.DeadEnds, 0)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := Analyze(&MazeData{Kind: "hex", Width: 1, Height: 1})
		assert.True(t, errors.Is(err, ErrUnsupportedKind))
	})
}

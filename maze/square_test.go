package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSquare(t *testing.T) {
	t.Run("Same options give identical mazes", func(t *testing.T) {
		opts := squareOptions(8, 8, "repeat", TopLeft, BottomRight, 100)

		first, err := GenerateSquare(opts)
		require.NoError(t, err)
		second, err := GenerateSquare(opts)
		require.NoError(t, err)

		assert.Equal(t, first.Grid, second.Grid)
		assert.Equal(t, first.Walls, second.Walls)
		assert.Equal(t, first.Solution, second.Solution)
		assert.GreaterOrEqual(t, len(first.Solution), 2)
		assert.Equal(t, Position{X: 0, Y: 0}, first.Solution[0])
		assert.Equal(t, Position{X: 7, Y: 7}, first.Solution[len(first.Solution)-1])
	})

	t.Run("Braided mazes are reproducible too", func(t *testing.T) {
		opts := squareOptions(15, 12, "braid-repeat", Random, Random, 25)

		first, err := GenerateSquare(opts)
		require.NoError(t, err)
		second, err := GenerateSquare(opts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Different seeds give different mazes", func(t *testing.T) {
		a, err := GenerateSquare(squareOptions(12, 12, "alpha", TopLeft, BottomRight, 100))
		require.NoError(t, err)
		b, err := GenerateSquare(squareOptions(12, 12, "beta", TopLeft, BottomRight, 100))
		require.NoError(t, err)

		assert.NotEqual(t, a.Walls, b.Walls)
	})

	t.Run("Grid has the requested size", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(5, 7, "1", TopLeft, BottomRight, 50))
		require.NoError(t, err)

		assert.Equal(t, KindSquare, m.Kind)
		require.Len(t, m.Grid, 7)
		for _, row := range m.Grid {
			assert.Len(t, row, 5)
			for _, cell := range row {
				assert.Len(t, cell.Walls, 4)
			}
		}
	})

	t.Run("Single cell maze", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(1, 1, "0", TopLeft, TopLeft, 1))
		require.NoError(t, err)

		assert.Equal(t, Position{X: 0, Y: 0}, *m.Start)
		assert.Equal(t, Position{X: 0, Y: 0}, *m.End)
		assert.Equal(t, []Position{{X: 0, Y: 0}}, m.Solution)
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}} {
			m, err := GenerateSquare(squareOptions(dims[0], dims[1], "x", TopLeft, BottomRight, 50))
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidDimension), "dims %v: got %v", dims, err)
		}
	})

	t.Run("Corner placements", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(8, 8, "1", TopLeft, BottomRight, 50))
		require.NoError(t, err)

		assert.Equal(t, Position{X: 0, Y: 0}, *m.Start)
		assert.Equal(t, Position{X: 7, Y: 7}, *m.End)
	})
}

func TestGenerateSquare_Properties(t *testing.T) {
	seeds := []string{"a", "b", "property", "42"}
	complexities := []int{1, 50, 100}

	for _, seed := range seeds {
		for _, c := range complexities {
			t.Run(fmt.Sprintf("seed=%s complexity=%d", seed, c), func(t *testing.T) {
				m, err := GenerateSquare(squareOptions(13, 9, seed, Random, Random, c))
				require.NoError(t, err)

				requireWallConservation(t, m)
				requireValidSolution(t, m)

				stats, err := Analyze(m)
				require.NoError(t, err)
				assert.Equal(t, 1, stats.Components)
				if c == MaxComplexity {
					assert.Equal(t, 0, stats.Loops)
				}
			})
		}
	}
}

func TestGenerateSquare_Placements(t *testing.T) {
	edges := []Placement{Top, Right, Bottom, Left}
	corners := []Placement{TopLeft, TopRight, BottomLeft, BottomRight}

	for _, group := range [][]Placement{edges, corners} {
		for _, start := range group {
			for _, end := range group {
				t.Run(fmt.Sprintf("%s to %s", start, end), func(t *testing.T) {
					m, err := GenerateSquare(squareOptions(10, 10, "edge-test", start, end, 50))
					require.NoError(t, err)

					assert.NotEqual(t, *m.Start, *m.End)
					assert.Empty(t, m.Warnings)
					requireValidSolution(t, m)
				})
			}
		}
	}

	entrances := map[Placement]struct {
		end  Placement
		wall Direction
	}{
		Top:    {end: Bottom, wall: North},
		Bottom: {end: Top, wall: South},
		Left:   {end: Right, wall: West},
		Right:  {end: Left, wall: East},
	}
	for start, tc := range entrances {
		t.Run(fmt.Sprintf("%s entrance opens %s", start, tc.wall), func(t *testing.T) {
			m, err := GenerateSquare(squareOptions(10, 10, "edge-test", start, tc.end, 50))
			require.NoError(t, err)

			assert.False(t, m.Grid[m.Start.Y][m.Start.X].HasWall(tc.wall))
			assert.False(t, m.Grid[m.End.Y][m.End.X].HasWall(opposites[tc.wall]))
		})
	}

	t.Run("Random start and end", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(10, 10, "random-test", Random, Random, 50))
		require.NoError(t, err)

		assert.NotEqual(t, *m.Start, *m.End)
		assert.Contains(t, perimeter(10, 10), *m.Start)
		assert.Contains(t, perimeter(10, 10), *m.End)
	})

	t.Run("Custom start and end", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(10, 10, "random-test", Custom, Custom, 50))
		require.NoError(t, err)

		assert.Equal(t, Position{X: 0, Y: 0}, *m.Start)
		assert.Equal(t, Position{X: 9, Y: 9}, *m.End)
	})

	t.Run("Unsupported placement falls back and is flagged", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(6, 6, "x", "squiggly", BottomRight, 100))
		require.NoError(t, err)

		assert.Equal(t, Position{X: 0, Y: 0}, *m.Start)
		require.Len(t, m.Warnings, 1)
		assert.Contains(t, m.Warnings[0], "squiggly")
	})
}

func TestGenerateSquare_Complexity(t *testing.T) {
	t.Run("Out of range values are clamped and flagged", func(t *testing.T) {
		high, err := GenerateSquare(squareOptions(10, 10, "clamp", TopLeft, BottomRight, 150))
		require.NoError(t, err)
		perfect, err := GenerateSquare(squareOptions(10, 10, "clamp", TopLeft, BottomRight, 100))
		require.NoError(t, err)

		assert.Equal(t, perfect.Walls, high.Walls)
		assert.Len(t, high.Warnings, 1)
		assert.Empty(t, perfect.Warnings)

		low, err := GenerateSquare(squareOptions(10, 10, "clamp", TopLeft, BottomRight, 0))
		require.NoError(t, err)
		loopiest, err := GenerateSquare(squareOptions(10, 10, "clamp", TopLeft, BottomRight, 1))
		require.NoError(t, err)

		assert.Equal(t, loopiest.Walls, low.Walls)
		assert.Len(t, low.Warnings, 1)
	})

	t.Run("Braiding reduces dead ends", func(t *testing.T) {
		perfect, err := GenerateSquare(squareOptions(20, 20, "braid", TopLeft, BottomRight, 100))
		require.NoError(t, err)
		braided, err := GenerateSquare(squareOptions(20, 20, "braid", TopLeft, BottomRight, 1))
		require.NoError(t, err)

		perfectStats, err := Analyze(perfect)
		require.NoError(t, err)
		braidedStats, err := Analyze(braided)
		require.NoError(t, err)

		assert.Less(t, braidedStats.DeadEnds, perfectStats.DeadEnds/2)
		assert.Greater(t, braidedStats.Loops, 0)
		assert.Less(t, len(braided.Walls), len(perfect.Walls))
		// Braiding only adds passages, so the shortest path cannot get longer.
		assert.LessOrEqual(t, len(braided.Solution), len(perfect.Solution))
	})
}

func TestMazeData_JSON(t *testing.T) {
	m, err := GenerateSquare(squareOptions(3, 2, "json", TopLeft, BottomRight, 100))
	require.NoError(t, err)

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"grid", "walls", "start", "end", "solution"} {
		assert.Contains(t, decoded, key)
	}
	assert.NotContains(t, decoded, "warnings")

	cell := decoded["grid"].([]any)[0].([]any)[0].(map[string]any)
	walls := cell["walls"].(map[string]any)
	assert.ElementsMatch(t, []string{"N", "E", "S", "W"}, keys(walls))
	assert.Equal(t, map[string]any{"x": float64(0), "y": float64(0)}, decoded["start"])
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

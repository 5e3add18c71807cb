package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazeData_String(t *testing.T) {
	t.Run("Single open cell", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(1, 1, "0", TopLeft, TopLeft, 100))
		require.NoError(t, err)

		assert.Equal(t, "+   +\n  S  \n+   +\n", m.String())
	})

	t.Run("Line count and markers", func(t *testing.T) {
		m, err := GenerateSquare(squareOptions(8, 8, "render", TopLeft, BottomRight, 100))
		require.NoError(t, err)

		out := m.String()
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.Len(t, lines, 17)
		for _, line := range lines {
			assert.Len(t, line, 33)
		}
		assert.Equal(t, 1, strings.Count(out, " S "))
		assert.Equal(t, 1, strings.Count(out, " E "))
		assert.Equal(t, len(m.Solution)-2, strings.Count(out, " . "))

		// Top-left entrance is open on the north and west sides.
		assert.True(t, strings.HasPrefix(lines[0], "+   +"))
		assert.True(t, strings.HasPrefix(lines[1], "  S "))
	})

	t.Run("Polar mazes are unrolled", func(t *testing.T) {
		m, err := GeneratePolar(polarOptions(5, 3, "round", CustomSector, CustomSector))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
		assert.Len(t, lines, 7)
		// The start cell has its inward wall open.
		assert.Equal(t, "+   +", lines[0][:5])
	})
}

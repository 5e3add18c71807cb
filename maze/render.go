package maze

import "strings"

// String provides a textual representation of the maze. Polar mazes are
// unrolled: ring 0 is the top row and sectors run left to right.
func (m *MazeData) String() string {
	north, east, south, west := North, East, South, West
	if m.Kind == KindPolar {
		north, east, south, west = Inward, Rightward, Outward, Leftward
	}

	onPath := make(map[Position]bool, len(m.Solution))
	for _, p := range m.Solution {
		onPath[p] = true
	}

	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for x := 0; x < m.Width; x++ {
		output.WriteString(segment(m.Grid[0][x].Walls[north], "---+", "   +"))
	}
	output.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		// Cell row
		output.WriteString(segment(m.Grid[y][0].Walls[west], "|", " "))
		for x := 0; x < m.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case m.Start != nil && *m.Start == p:
				output.WriteString(" S ")
			case m.End != nil && *m.End == p:
				output.WriteString(" E ")
			case onPath[p]:
				output.WriteString(" . ")
			default:
				output.WriteString("   ")
			}
			output.WriteString(segment(m.Grid[y][x].Walls[east], "|", " "))
		}
		output.WriteString("\n")

		// Wall row
		output.WriteString("+")
		for x := 0; x < m.Width; x++ {
			output.WriteString(segment(m.Grid[y][x].Walls[south], "---+", "   +"))
		}
		output.WriteString("\n")
	}

	return output.String()
}

func segment(standing bool, wall, open string) string {
	if standing {
		return wall
	}
	return open
}

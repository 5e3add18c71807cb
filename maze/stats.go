package maze

// Stats summarizes the shape of a generated maze.
type Stats struct {
	Cells          int `json:"cells"`
	DeadEnds       int `json:"deadEnds"`
	Passages       int `json:"passages"`   // open walls between two cells
	Components     int `json:"components"` // connected regions
	Loops          int `json:"loops"`      // independent cycles; 0 for a perfect maze
	SolutionLength int `json:"solutionLength"`
}

// Analyze computes Stats for m.
func Analyze(m *MazeData) (Stats, error) {
	g, err := m.grid()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Cells:          m.Width * m.Height,
		SolutionLength: len(m.Solution),
	}

	// Each passage is seen once from each side.
	open := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			p := Position{X: x, Y: y}
			open += len(g.passages(p))
			if g.isDeadEnd(p) {
				stats.DeadEnds++
			}
		}
	}
	stats.Passages = open / 2
	stats.Components = components(g)
	stats.Loops = stats.Passages - stats.Cells + stats.Components

	return stats, nil
}

// components counts the connected regions of g.
func components(g *Grid) int {
	seen := make([][]bool, len(g.cells))
	for y := range seen {
		seen[y] = make([]bool, len(g.cells[y]))
	}

	count := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if seen[y][x] {
				continue
			}
			count++
			seen[y][x] = true
			queue := []Position{{X: x, Y: y}}
			for head := 0; head < len(queue); head++ {
				for _, m := range g.passages(queue[head]) {
					if !seen[m.to.Y][m.to.X] {
						seen[m.to.Y][m.to.X] = true
						queue = append(queue, m.to)
					}
				}
			}
		}
	}
	return count
}

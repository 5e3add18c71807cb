package maze

// extractWalls flattens the grid into one segment per standing wall, in
// row-major order and topology direction order within a cell.
func extractWalls(g *Grid) []WallSegment {
	walls := make([]WallSegment, 0)
	for y := range g.cells {
		for x := range g.cells[y] {
			for _, d := range g.topo.Directions() {
				if g.cells[y][x].Walls[d] {
					walls = append(walls, WallSegment{X: x, Y: y, Dir: d})
				}
			}
		}
	}
	return walls
}

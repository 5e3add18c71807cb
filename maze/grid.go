package maze

// Grid is the mutable cell matrix used while a maze is being built.
// Cells are indexed [y][x].
type Grid struct {
	topo  Topology
	cells [][]Cell
}

// newGrid returns a fully walled grid for t.
func newGrid(t Topology) *Grid {
	dirs := t.Directions()
	cells := make([][]Cell, t.Height())
	for y := range cells {
		cells[y] = make([]Cell, t.Width())
		for x := range cells[y] {
			cells[y][x] = newCell(dirs)
		}
	}

	return &Grid{
		topo:  t,
		cells: cells,
	}
}

// gridFromCells wraps existing cells without copying them.
func gridFromCells(t Topology, cells [][]Cell) *Grid {
	return &Grid{topo: t, cells: cells}
}

// inBound reports whether p lies inside the grid.
func (g *Grid) inBound(p Position) bool {
	return p.X >= 0 && p.X < g.topo.Width() && p.Y >= 0 && p.Y < g.topo.Height()
}

// hasWall returns true if the wall on side d of p is standing.
func (g *Grid) hasWall(p Position, d Direction) bool {
	return g.cells[p.Y][p.X].Walls[d]
}

// neighbors finds all in-bound moves from p in topology order.
func (g *Grid) neighbors(p Position) []move {
	var result []move
	for _, d := range g.topo.Directions() {
		if n, ok := g.topo.Neighbor(p, d); ok {
			result = append(result, move{from: p, to: n, dir: d})
		}
	}
	return result
}

// passages returns the moves from p whose wall is open.
func (g *Grid) passages(p Position) []move {
	var result []move
	for _, m := range g.neighbors(p) {
		if !g.hasWall(p, m.dir) {
			result = append(result, m)
		}
	}
	return result
}

// openWall removes the wall on side d of p, and the matching wall of the
// neighbor on the other side when there is one.
func (g *Grid) openWall(p Position, d Direction) {
	g.cells[p.Y][p.X].Walls[d] = false
	if n, ok := g.topo.Neighbor(p, d); ok {
		g.cells[n.Y][n.X].Walls[g.topo.Opposite(d)] = false
	}
}

// standingWalls lists the standing walls of p in topology order.
func (g *Grid) standingWalls(p Position) []Direction {
	var result []Direction
	for _, d := range g.topo.Directions() {
		if g.hasWall(p, d) {
			result = append(result, d)
		}
	}
	return result
}

// isDeadEnd reports whether p has exactly three standing walls.
func (g *Grid) isDeadEnd(p Position) bool {
	return g.cells[p.Y][p.X].WallCount() == 3
}

// deadEnds collects dead-end cells in row-major order.
func (g *Grid) deadEnds() []Position {
	var result []Position
	for y := range g.cells {
		for x := range g.cells[y] {
			p := Position{X: x, Y: y}
			if g.isDeadEnd(p) {
				result = append(result, p)
			}
		}
	}
	return result
}

package maze

// Direction names one side of a cell. Square grids use N, S, E and W;
// polar grids use in, out, left and right.
type Direction string

const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"

	Inward    Direction = "in"    // toward the center
	Outward   Direction = "out"   // away from the center
	Leftward  Direction = "left"  // sector - 1
	Rightward Direction = "right" // sector + 1
)

// Cell represents a single cell in a maze grid.
// Walls holds one flag per direction of the grid topology; true means the wall is standing.
type Cell struct {
	Walls map[Direction]bool `json:"walls" bson:"walls"`
}

// newCell returns a cell with every wall of dirs standing.
func newCell(dirs []Direction) Cell {
	walls := make(map[Direction]bool, len(dirs))
	for _, d := range dirs {
		walls[d] = true
	}
	return Cell{Walls: walls}
}

// HasWall returns true if the wall on side d is standing.
func (c Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

// WallCount returns the number of standing walls.
func (c Cell) WallCount() int {
	n := 0
	for _, standing := range c.Walls {
		if standing {
			n++
		}
	}
	return n
}

// Position is a cell coordinate. For square mazes X is the column and Y the row;
// for polar mazes X is the sector and Y the ring.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// WallSegment is one standing wall on one side of one cell, used for rendering.
type WallSegment struct {
	X   int       `json:"x"`
	Y   int       `json:"y"`
	Dir Direction `json:"dir"`
}

// move represents a step from one cell to an adjacent one.
type move struct {
	from Position
	to   Position
	dir  Direction
}

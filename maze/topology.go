package maze

import "fmt"

// Kind tags the topology of a maze.
type Kind string

const (
	KindSquare Kind = "square"
	KindPolar  Kind = "polar"
)

// Topology supplies the neighbor geometry of a grid. Carving, braiding, solving
// and wall extraction are written against it once for both maze kinds.
type Topology interface {
	// Kind returns the topology tag.
	Kind() Kind
	// Width returns the number of columns (square) or sectors (polar).
	Width() int
	// Height returns the number of rows (square) or rings (polar).
	Height() int
	// Directions returns the wall directions of a cell in canonical order.
	Directions() []Direction
	// Opposite returns the direction pointing back across the wall on side d.
	Opposite(d Direction) Direction
	// Neighbor returns the cell across the wall on side d of p, and false
	// when that side faces the grid exterior.
	Neighbor(p Position, d Direction) (Position, bool)
}

var (
	squareDirections = []Direction{North, East, South, West}
	polarDirections  = []Direction{Outward, Inward, Leftward, Rightward}

	squareDeltas = map[Direction]Position{
		North: {X: 0, Y: -1},
		East:  {X: 1, Y: 0},
		South: {X: 0, Y: 1},
		West:  {X: -1, Y: 0},
	}

	opposites = map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
		Inward:    Outward,
		Outward:   Inward,
		Leftward:  Rightward,
		Rightward: Leftward,
	}
)

// NewTopology returns the topology of the given kind and dimensions.
func NewTopology(kind Kind, width, height int) (Topology, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	switch kind {
	case KindSquare:
		return squareTopology{width: width, height: height}, nil
	case KindPolar:
		return polarTopology{sectors: width, rings: height}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}

type squareTopology struct {
	width  int
	height int
}

func (t squareTopology) Kind() Kind                     { return KindSquare }
func (t squareTopology) Width() int                     { return t.width }
func (t squareTopology) Height() int                    { return t.height }
func (t squareTopology) Directions() []Direction        { return squareDirections }
func (t squareTopology) Opposite(d Direction) Direction { return opposites[d] }

func (t squareTopology) Neighbor(p Position, d Direction) (Position, bool) {
	delta, ok := squareDeltas[d]
	if !ok {
		return Position{}, false
	}
	n := Position{X: p.X + delta.X, Y: p.Y + delta.Y}
	return n, n.X >= 0 && n.X < t.width && n.Y >= 0 && n.Y < t.height
}

// polarTopology is a ring/sector grid with a constant sector count per ring.
// Sector indices wrap around; ring 0 is the innermost ring.
type polarTopology struct {
	sectors int
	rings   int
}

func (t polarTopology) Kind() Kind                     { return KindPolar }
func (t polarTopology) Width() int                     { return t.sectors }
func (t polarTopology) Height() int                    { return t.rings }
func (t polarTopology) Directions() []Direction        { return polarDirections }
func (t polarTopology) Opposite(d Direction) Direction { return opposites[d] }

func (t polarTopology) Neighbor(p Position, d Direction) (Position, bool) {
	n := p
	switch d {
	case Inward:
		n.Y--
	case Outward:
		n.Y++
	case Leftward:
		n.X = (p.X - 1 + t.sectors) % t.sectors
	case Rightward:
		n.X = (p.X + 1) % t.sectors
	default:
		return Position{}, false
	}

	// A single-sector ring wraps onto itself; that is not a neighbor.
	if n == p {
		return Position{}, false
	}
	return n, n.Y >= 0 && n.Y < t.rings
}

package maze

// role tells the resolver which end of the maze it is placing.
type role int

const (
	roleStart role = iota
	roleEnd
)

func (r role) String() string {
	if r == roleStart {
		return "start"
	}
	return "end"
}

// placer resolves placement policies on one grid with one stream.
type placer struct {
	topo     Topology
	rng      *Stream
	warnings []string
}

// placement is a resolved start or end: the cell and the policy that produced it.
type placement struct {
	pos    Position
	policy Placement
}

// resolve picks the start and end cells. If the end lands on the start it is
// re-resolved exactly once with the topology's fallback.
func (pl *placer) resolve(startPolicy, endPolicy Placement) (placement, placement) {
	start := pl.place(startPolicy, roleStart, nil)
	end := pl.place(endPolicy, roleEnd, &start.pos)
	if end.pos != start.pos {
		return start, end
	}

	if pl.topo.Kind() == KindPolar {
		return start, placement{pos: pl.polarFallback(start.pos), policy: end.policy}
	}
	return start, pl.squareFallback(end.policy, start.pos)
}

func (pl *placer) place(p Placement, r role, avoid *Position) placement {
	var (
		pos Position
		ok  bool
	)
	if pl.topo.Kind() == KindPolar {
		pos, ok = pl.polar(p, r)
	} else {
		pos, ok = pl.square(p, r, avoid)
	}

	if !ok {
		fallback := TopLeft
		if pl.topo.Kind() == KindPolar {
			fallback = CustomSector
		}
		pl.warnings = append(pl.warnings, placementWarning(p, r.String(), fallback))
		return placement{pos: pos, policy: fallback}
	}
	return placement{pos: pos, policy: p}
}

// square resolves a square-grid policy. It returns false for unknown policies,
// which resolve to the top-left corner.
func (pl *placer) square(p Placement, r role, avoid *Position) (Position, bool) {
	w, h := pl.topo.Width(), pl.topo.Height()
	hits := func(pos Position) bool {
		return avoid != nil && *avoid == pos
	}

	switch p {
	case TopLeft:
		return Position{X: 0, Y: 0}, true
	case TopRight:
		return Position{X: w - 1, Y: 0}, true
	case BottomLeft:
		return Position{X: 0, Y: h - 1}, true
	case BottomRight:
		return Position{X: w - 1, Y: h - 1}, true
	case Top, Bottom:
		pos := Position{X: pl.rng.Intn(w), Y: 0}
		if p == Bottom {
			pos.Y = h - 1
		}
		if hits(pos) {
			pos.X = (pos.X + 1) % w
		}
		return pos, true
	case Left, Right:
		pos := Position{X: 0, Y: pl.rng.Intn(h)}
		if p == Right {
			pos.X = w - 1
		}
		if hits(pos) {
			pos.Y = (pos.Y + 1) % h
		}
		return pos, true
	case Random:
		var candidates []Position
		for _, pos := range perimeter(w, h) {
			if !hits(pos) {
				candidates = append(candidates, pos)
			}
		}
		if len(candidates) == 0 {
			return Position{X: 0, Y: 0}, true
		}
		return candidates[pl.rng.Intn(len(candidates))], true
	case Custom:
		if r == roleStart {
			return Position{X: 0, Y: 0}, true
		}
		return Position{X: w - 1, Y: h - 1}, true
	default:
		return Position{X: 0, Y: 0}, false
	}
}

// polar resolves a polar-grid policy. X is the sector, Y the ring. Unknown
// policies resolve like CustomSector.
func (pl *placer) polar(p Placement, r role) (Position, bool) {
	sectors, rings := pl.topo.Width(), pl.topo.Height()
	roleRing := 0
	if r == roleEnd {
		roleRing = rings - 1
	}

	switch p {
	case Center:
		return Position{X: sectors / 2, Y: 0}, true
	case Outer:
		return Position{X: sectors / 2, Y: rings - 1}, true
	case RandomRing:
		ring := pl.rng.Intn(rings)
		return Position{X: pl.rng.Intn(sectors), Y: ring}, true
	case CustomSector:
		return Position{X: 0, Y: roleRing}, true
	case Random:
		return Position{X: pl.rng.Intn(sectors), Y: roleRing}, true
	default:
		return Position{X: 0, Y: roleRing}, false
	}
}

// squareFallback re-resolves an end that collided with start. Edge policies
// switch to the opposite edge; anything else shifts by half the grid.
func (pl *placer) squareFallback(endPolicy Placement, start Position) placement {
	opposite := map[Placement]Placement{
		Top:    Bottom,
		Bottom: Top,
		Left:   Right,
		Right:  Left,
	}
	if p, ok := opposite[endPolicy]; ok {
		pos, _ := pl.square(p, roleEnd, &start)
		return placement{pos: pos, policy: p}
	}

	w, h := pl.topo.Width(), pl.topo.Height()
	pos := start
	if w > 1 {
		pos.X = (start.X + max(1, w/2)) % w
	} else {
		pos.Y = (start.Y + max(1, h/2)) % h
	}
	// The shifted cell has no policy-implied side.
	return placement{pos: pos, policy: ""}
}

// polarFallback shifts a colliding end half way around its ring, or across
// rings when there is only one sector.
func (pl *placer) polarFallback(start Position) Position {
	sectors, rings := pl.topo.Width(), pl.topo.Height()
	pos := start
	if sectors > 1 {
		pos.X = (start.X + max(1, sectors/2)) % sectors
	} else {
		pos.Y = (start.Y + max(1, rings/2)) % rings
	}
	return pos
}

// perimeter lists the border cells of a w×h grid once each: top row, bottom
// row, then the left and right columns without their corners.
func perimeter(w, h int) []Position {
	var cells []Position
	for x := 0; x < w; x++ {
		cells = append(cells, Position{X: x, Y: 0})
	}
	if h > 1 {
		for x := 0; x < w; x++ {
			cells = append(cells, Position{X: x, Y: h - 1})
		}
	}
	for y := 1; y < h-1; y++ {
		cells = append(cells, Position{X: 0, Y: y})
		if w > 1 {
			cells = append(cells, Position{X: w - 1, Y: y})
		}
	}
	return cells
}

// entranceWalls returns the sides of pos to open for an entrance or exit: the
// side implied by an edge policy, otherwise every side facing the exterior.
func entranceWalls(p Placement, pos Position, w, h int) []Direction {
	switch p {
	case Top:
		return []Direction{North}
	case Bottom:
		return []Direction{South}
	case Left:
		return []Direction{West}
	case Right:
		return []Direction{East}
	}

	var dirs []Direction
	if pos.Y == 0 {
		dirs = append(dirs, North)
	}
	if pos.X == w-1 {
		dirs = append(dirs, East)
	}
	if pos.Y == h-1 {
		dirs = append(dirs, South)
	}
	if pos.X == 0 {
		dirs = append(dirs, West)
	}
	return dirs
}

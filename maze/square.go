package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// GenerateSquare builds a square maze with a randomized depth-first search,
// opens the entrance and exit, braids it according to opts.Complexity and
// solves it.
func GenerateSquare(opts Options) (*MazeData, error) {
	topo, err := NewTopology(KindSquare, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	var warnings []string
	complexity, ok := clampComplexity(opts.Complexity)
	if !ok {
		warnings = append(warnings, complexityWarning(opts.Complexity, complexity))
	}

	rng := NewStream(string(opts.Seed))
	grid := newGrid(topo)
	pl := &placer{topo: topo, rng: rng}
	start, end := pl.resolve(opts.StartPosition, opts.EndPosition)
	warnings = append(warnings, pl.warnings...)

	tree := carveSquare(grid, start.pos, rng)

	for _, d := range entranceWalls(start.policy, start.pos, topo.Width(), topo.Height()) {
		grid.openWall(start.pos, d)
	}
	for _, d := range entranceWalls(end.policy, end.pos, topo.Width(), topo.Height()) {
		grid.openWall(end.pos, d)
	}

	removed := 0
	if complexity < MaxComplexity {
		removed = braid(grid, complexity, rng)
	}

	walls := extractWalls(grid)

	// Carving parents only describe the spanning tree; once braiding has
	// added a passage the shortest path has to be searched for.
	var solution []Position
	if removed == 0 {
		solution, ok = tree.pathTo(start.pos, end.pos)
	}
	if removed > 0 || !ok {
		solution, err = solve(grid, start.pos, end.pos)
		if err != nil {
			return nil, fmt.Errorf("solving square maze: %w", err)
		}
	}

	return newMazeData(grid, walls, start.pos, end.pos, solution, warnings), nil
}

// parentTree maps each carved cell to the cell it was carved from.
type parentTree map[Position]Position

// pathTo walks the tree from end back to its root and returns the path in
// start → end order. It returns false when the walk does not reach start.
func (t parentTree) pathTo(start, end Position) ([]Position, bool) {
	path := []Position{end}
	for cur := end; cur != start; {
		prev, ok := t[cur]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// carveSquare carves a spanning tree rooted at start with an iterative
// randomized depth-first search and returns the carving parents.
func carveSquare(g *Grid, start Position, rng *Stream) parentTree {
	visited := mapset.New[Position]()
	parents := make(parentTree, g.topo.Width()*g.topo.Height())

	stack := []Position{start}
	visited.Put(start)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []move
		for _, m := range g.neighbors(current) {
			if !visited.Has(m.to) {
				candidates = append(candidates, m)
			}
		}

		if len(candidates) == 0 {
			pop(&stack)
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.openWall(next.from, next.dir)
		visited.Put(next.to)
		parents[next.to] = current
		stack = append(stack, next.to)
	}

	return parents
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]Position) Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// solve runs a breadth-first search from end over open passages and returns
// the shortest path in start → end order.
func solve(g *Grid, start, end Position) ([]Position, error) {
	if start == end {
		return []Position{start}, nil
	}

	visited := mapset.New[Position]()
	parent := make(map[Position]Position)

	queue := []Position{end}
	visited.Put(end)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == start {
			break
		}
		for _, m := range g.passages(cur) {
			if visited.Has(m.to) {
				continue
			}
			visited.Put(m.to)
			parent[m.to] = cur
			queue = append(queue, m.to)
		}
	}

	if !visited.Has(start) {
		return nil, fmt.Errorf("%w: start=%v end=%v", ErrUnreachable, start, end)
	}

	// Parents point toward end, so walking from start already yields start → end.
	path := []Position{start}
	for cur := start; cur != end; {
		cur = parent[cur]
		path = append(path, cur)
	}
	return path, nil
}

package maze

// braid removes walls at dead ends to add loops. complexity must already be
// in [MinComplexity, MaxComplexity]; 100 leaves the maze untouched and 1
// opens up to 99% of the dead ends. It returns the number of walls removed.
func braid(g *Grid, complexity int, rng *Stream) int {
	deadEnds := g.deadEnds()
	target := len(deadEnds) * (MaxComplexity - complexity) / MaxComplexity
	if target == 0 {
		return 0
	}

	shuffle(rng, deadEnds)

	removed := 0
	for _, p := range deadEnds {
		if removed >= target {
			break
		}
		// An earlier removal may already have opened this cell.
		if !g.isDeadEnd(p) {
			continue
		}

		dirs := g.standingWalls(p)
		shuffle(rng, dirs)
		for _, d := range dirs {
			if _, ok := g.topo.Neighbor(p, d); ok {
				g.openWall(p, d)
				removed++
				break
			}
		}
	}

	return removed
}

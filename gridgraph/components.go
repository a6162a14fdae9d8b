package gridgraph

// Region collects the passable cells reachable from p by orthogonal moves,
// p included, in discovery order. A wall or out-of-bounds p yields nil.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Region(p Position) []Position {
	if !g.Passable(p) {
		return nil
	}
	seen := make([]bool, g.Size())
	i0 := g.Index(p)
	seen[i0] = true
	queue := []int{i0}
	var region []Position

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		region = append(region, u)
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return region
}

// Connected reports whether q is reachable from p through passable cells.
func (g *Grid) Connected(p, q Position) bool {
	if !g.Passable(q) {
		return false
	}
	for _, r := range g.Region(p) {
		if r == q {
			return true
		}
	}
	return false
}

// GoalReachable reports whether any Goal cell lies in the Start cell's region.
func (g *Grid) GoalReachable() bool {
	for _, r := range g.Region(g.start) {
		if g.cells[r.Row][r.Col] == Goal {
			return true
		}
	}
	return false
}

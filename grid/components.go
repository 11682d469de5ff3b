package grid

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// neighborOffsets returns the 4- or 8-connected step offsets.
func neighborOffsets(diagonal bool) [][2]int {
	if diagonal {
		return offsets8
	}

	return offsets4
}

// ConnectedComponents finds all contiguous regions of walkable cells.
// Returns a slice of components; each component is a slice of node IDs in
// breadth-first discovery order. Components are ordered by their first cell
// in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(diagonal bool) [][]int {
	seen := make([]bool, len(g.nodes))
	offsets := neighborOffsets(diagonal)
	var comps [][]int

	for i0, n := range g.nodes {
		if !n.Walkable || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Position(queue[qi])
			for _, d := range offsets {
				vx, vy := u.X+d[0], u.Y+d[1]
				if !g.walkable(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Reachable reports whether a walkable path joins a and b.
// Returns ErrOutOfBounds for positions outside the grid.
func (g *Grid) Reachable(a, b Position, diagonal bool) (bool, error) {
	dist, err := g.StepDistances(a, diagonal)
	if err != nil {
		return false, err
	}
	bi, err := g.Index(b)
	if err != nil {
		return false, err
	}

	return dist[bi] >= 0, nil
}

package grid

// Unreached marks cells StepDistances could not reach.
const Unreached = -1

// StepDistances runs a breadth-first search over walkable cells from `from`
// and returns, per node ID, the minimum number of steps to reach it, or
// Unreached. Diagonal steps count as one. A blocked start reaches nothing.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (g *Grid) StepDistances(from Position, diagonal bool) ([]int, error) {
	start, err := g.Index(from)
	if err != nil {
		return nil, err
	}

	dist := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = Unreached
	}
	if !g.nodes[start].Walkable {
		return dist, nil
	}

	offsets := neighborOffsets(diagonal)
	dist[start] = 0
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		up := g.Position(u)
		for _, d := range offsets {
			vx, vy := up.X+d[0], up.Y+d[1]
			if !g.walkable(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			if dist[v] == Unreached {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist, nil
}

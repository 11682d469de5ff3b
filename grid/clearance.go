package grid

import (
	"container/list"
	"math"
)

// MinClearance finds a path from `from` to `to` that crosses the fewest
// blocked cells, treating each blocked cell entered as cost 1 and each
// walkable cell as cost 0. It returns the path (both endpoints included) and
// the number of blocked cells on it, i.e. how many obstacles would have to be
// cleared for a plain search to succeed.
//
// Behavior:
//  1. Validate both positions (ErrOutOfBounds).
//  2. 0-1 BFS: cost-0 moves go to the deque front, cost-1 moves to the back.
//  3. Stop when `to` is dequeued; rebuild the path from predecessors.
//
// A blocked start or goal counts like any other blocked cell on the path, so
// cost is 0 exactly when a plain search can join the two cells.
// Every cell is enterable at some cost, so err is only ErrOutOfBounds.
// Complexity: O(W·H·d), Memory: O(W·H).
func (g *Grid) MinClearance(from, to Position, diagonal bool) (path []Position, cost int, err error) {
	src, err := g.Index(from)
	if err != nil {
		return nil, 0, err
	}
	dst, err := g.Index(to)
	if err != nil {
		return nil, 0, err
	}

	n := len(g.nodes)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = NoParent
	}

	dq := list.New()
	dist[src] = 0
	if !g.nodes[src].Walkable {
		dist[src] = 1
	}
	dq.PushFront(src)
	offsets := neighborOffsets(diagonal)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		up := g.Position(u)
		for _, d := range offsets {
			vx, vy := up.X+d[0], up.Y+d[1]
			if vx < 0 || vx >= g.width || vy < 0 || vy >= g.height {
				continue
			}
			v := g.index(vx, vy)
			step := 0
			if !g.nodes[v].Walkable {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at != NoParent; at = prev[at] {
		path = append(path, g.Position(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

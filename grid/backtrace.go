package grid

// Backtrace walks the parent chain of node id in s and returns the visited
// positions ordered start → id.
//
// The walk begins at id when includeEnd is set, otherwise at its parent. The
// root of the chain (the start) is appended only when includeStart is set.
// A node with no parent and includeEnd unset has nothing to walk and yields
// an empty path.
// Complexity: O(path length).
func Backtrace(g *Grid, s *Scratch, id int, includeStart, includeEnd bool) []Position {
	cur := id
	if !includeEnd {
		cur = s.Parent(id)
		if cur == NoParent {
			return []Position{}
		}
	}

	var path []Position
	for s.Parent(cur) != NoParent {
		path = append(path, g.Position(cur))
		cur = s.Parent(cur)
	}
	if includeStart {
		path = append(path, g.Position(cur))
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path == nil {
		return []Position{}
	}

	return path
}

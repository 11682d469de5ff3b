// Package gridstar finds shortest paths on 2D occupancy grids with A* and
// its zero-heuristic specialisation, Dijkstra.
//
// 🚀 What is gridstar?
//
//	A small, dependency-light pathfinding toolkit:
//		• Grid model: rectangular cells, walkable or blocked, built from a
//		  matrix or generated from an obstacle density
//		• Heuristics: Manhattan, Euclidean, Chebyshev, Octile
//		• Search: A* with 4- or 8-connected moves, weighted heuristics,
//		  start/end trimming and a best-effort path on failure
//		• Helpers: connected regions, BFS step distances, minimum clearance
//
// Layout:
//
//	grid/         Grid, Node, Position, per-search Scratch state, Backtrace
//	heuristic/    distance estimates
//	astar/        Finder (A* and Dijkstra), Options, Result
//	cmd/gridstar  scenario runner with terminal rendering
//
// Quick example:
//
//	f, _ := astar.New(grid.Config{Matrix: [][]int{
//		{0, 0, 0},
//		{0, 1, 0},
//		{0, 0, 0},
//	}}, astar.WithDiagonal(false))
//	res, err := f.FindPath(grid.Pos(0, 1), grid.Pos(2, 1))
//	// res.Path == [0,1 0,0 1,0 2,0 2,1], res.Cost == 4
//
// A Finder reuses its search state between calls and serialises its own
// searches. Several Finders may share one *grid.Grid.
package gridstar

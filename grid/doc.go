// Package grid models a rectangular field of walkable and blocked cells as
// the search space for the astar package.
//
// What:
//
//   - Grid owns height×width static Nodes (ID, Position, Walkable, Cost),
//     addressed row-major: ID = y*Width + x.
//   - Grids are built from a 0/1 or cost matrix (FromMatrix) or from a random
//     obstacle density on a 0–10 scale (Random). New dispatches on a Config.
//   - Scratch is a per-search arena (g, h, f, open/closed flags, parent ID)
//     indexed by node ID, so several searches can share one read-only Grid.
//   - Backtrace rebuilds the start→goal coordinate list from Scratch parents.
//
// Connectivity helpers:
//
//   - SurroundingNodes: walkable neighbours in fixed 3×3 row-major order.
//   - ConnectedComponents / Reachable: walkable regions.
//   - StepDistances: breadth-first hop counts from one cell.
//   - MinClearance: fewest blocked cells to clear to join two cells (0-1 BFS).
//
// Complexity:
//
//   - NodeAt, IsWalkableAt, Index, Position: O(1).
//   - ConnectedComponents, StepDistances: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - MinClearance: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows, no columns, or non-positive dimensions.
//   - ErrNonRectangular: matrix rows have differing lengths.
//   - ErrNegativeCost: a cost matrix holds a negative value.
//   - ErrBadDensity: obstacle density outside [0,10].
//   - ErrOutOfBounds: a position lies outside the grid.
package grid

package grid

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Grid is a rectangular, row-major collection of Nodes. Dimensions and
// walkability are fixed after construction, so a Grid is safe to share
// between goroutines as long as each search uses its own Scratch.
type Grid struct {
	width, height int
	nodes         []Node
}

// New builds a Grid from cfg: matrix mode when cfg.Matrix is non-nil,
// random-density mode otherwise.
func New(cfg Config) (*Grid, error) {
	if cfg.Matrix != nil {
		return FromMatrix(cfg.Matrix, WithMaxCost(cfg.MaxCost))
	}
	var opts []Option
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}

	return Random(cfg.Width, cfg.Height, cfg.DensityOfObstacles, opts...)
}

// FromMatrix constructs a Grid from a non-empty, rectangular matrix where
// matrix[y][x] describes cell (x,y). By default any non-zero value blocks the
// cell; WithMaxCost switches to cost interpretation.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCost on bad input.
// Complexity: O(W×H) time and memory.
func FromMatrix(matrix [][]int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(matrix), len(matrix[0])
	for y, row := range matrix {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	g := newGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := &g.nodes[g.index(x, y)]
			v := matrix[y][x]
			if o.MaxCost > 0 {
				if v < 0 {
					return nil, fmt.Errorf("%w: cell %d,%d cost=%d", ErrNegativeCost, x, y, v)
				}
				n.Cost = v
				n.Walkable = v < o.MaxCost
				continue
			}
			n.Walkable = v == 0
		}
	}

	return g, nil
}

// Random constructs a width×height Grid whose cells are blocked when a
// uniform draw from [1,10] exceeds 10-density. Density 0 yields an open grid,
// density 10 a fully blocked one.
func Random(width, height, density int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if density < 0 || density > MaxDensity {
		return nil, fmt.Errorf("%w: got %d", ErrBadDensity, density)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := newGrid(width, height)
	for i := range g.nodes {
		g.nodes[i].Walkable = rng.Intn(MaxDensity)+1 <= MaxDensity-density
	}

	return g, nil
}

// newGrid allocates nodes with IDs and positions; every cell starts walkable.
func newGrid(w, h int) *Grid {
	g := &Grid{width: w, height: h, nodes: make([]Node, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := g.index(x, y)
			g.nodes[id] = Node{ID: id, Position: Position{X: x, Y: y}, Walkable: true}
		}
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// NumberOfFields returns Width×Height.
func (g *Grid) NumberOfFields() int { return len(g.nodes) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its node ID, or returns ErrOutOfBounds.
func (g *Grid) Index(p Position) (int, error) {
	if !g.InBounds(p) {
		return -1, g.outOfBounds(p)
	}

	return g.index(p.X, p.Y), nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Position converts a node ID back to its coordinate.
// Complexity: O(1).
func (g *Grid) Position(id int) Position {
	return Position{X: id % g.width, Y: id / g.width}
}

// Node returns the node with the given ID. It panics on an invalid ID, like
// slice indexing.
func (g *Grid) Node(id int) Node {
	return g.nodes[id]
}

// NodeAt returns the node at p, or ErrOutOfBounds.
func (g *Grid) NodeAt(p Position) (Node, error) {
	if !g.InBounds(p) {
		return Node{}, g.outOfBounds(p)
	}

	return g.nodes[g.index(p.X, p.Y)], nil
}

// IsWalkableAt reports whether the cell at p can be entered, or returns
// ErrOutOfBounds.
func (g *Grid) IsWalkableAt(p Position) (bool, error) {
	if !g.InBounds(p) {
		return false, g.outOfBounds(p)
	}

	return g.nodes[g.index(p.X, p.Y)].Walkable, nil
}

func (g *Grid) walkable(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && g.nodes[g.index(x, y)].Walkable
}

func (g *Grid) outOfBounds(p Position) error {
	return fmt.Errorf("%w: %v not within %dx%d", ErrOutOfBounds, p, g.width, g.height)
}

// SurroundingNodes returns the walkable, in-bounds neighbours of p in
// row-major order over the 3×3 block centred on p. Without diagonal only the
// four cells sharing p's row or column are considered. Diagonal steps are not
// checked against their flanking orthogonal cells.
func (g *Grid) SurroundingNodes(p Position, diagonal bool) []Node {
	out := make([]Node, 0, 8)
	for y := p.Y - 1; y <= p.Y+1; y++ {
		for x := p.X - 1; x <= p.X+1; x++ {
			if x == p.X && y == p.Y {
				continue
			}
			if !diagonal && x != p.X && y != p.Y {
				continue
			}
			if g.walkable(x, y) {
				out = append(out, g.nodes[g.index(x, y)])
			}
		}
	}

	return out
}

// Clone returns an independent Grid with identical walkability and costs.
func (g *Grid) Clone() *Grid {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)

	return &Grid{width: g.width, height: g.height, nodes: nodes}
}

// NewScratch allocates zeroed search state sized to g.
func (g *Grid) NewScratch() *Scratch {
	return newScratch(len(g.nodes))
}

// Matrix exports walkability as a 0/1 matrix (1 = blocked), or the stored
// cost for cost-matrix grids whose cells carry a non-zero cost.
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		m[y] = make([]int, g.width)
		for x := 0; x < g.width; x++ {
			n := g.nodes[g.index(x, y)]
			switch {
			case n.Cost != 0:
				m[y][x] = n.Cost
			case !n.Walkable:
				m[y][x] = 1
			}
		}
	}

	return m
}

// String draws the grid with '.' for walkable and '#' for blocked cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.nodes[g.index(x, y)].Walkable {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

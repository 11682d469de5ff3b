package grid

// NoParent marks a node without a predecessor.
const NoParent = -1

// listState tracks which search list a node is on.
type listState uint8

const (
	unseen listState = iota
	onOpen
	onClosed
)

// NodeState is a read-only snapshot of one node's search state.
type NodeState struct {
	G, H, F float64
	Open    bool
	Closed  bool
	Parent  int // NoParent when unset
}

// Scratch is the mutable search state of every node of one Grid, stored in
// flat arrays indexed by node ID. A Scratch belongs to a single search at a
// time; the Grid it was created from stays read-only.
//
// Invariants: F(id) == G(id)+H(id) after every setter, and a node is never
// open and closed at once.
type Scratch struct {
	g, h, f []float64
	parent  []int
	list    []listState
}

func newScratch(n int) *Scratch {
	s := &Scratch{
		g:      make([]float64, n),
		h:      make([]float64, n),
		f:      make([]float64, n),
		parent: make([]int, n),
		list:   make([]listState, n),
	}
	for i := range s.parent {
		s.parent[i] = NoParent
	}

	return s
}

// Len returns the number of nodes covered.
func (s *Scratch) Len() int { return len(s.list) }

// Reset clears open/closed flags and parents and zeroes g, h and f for
// every node.
func (s *Scratch) Reset() {
	clear(s.g)
	clear(s.h)
	clear(s.f)
	clear(s.list)
	for i := range s.parent {
		s.parent[i] = NoParent
	}
}

// G returns the accumulated cost from the start.
func (s *Scratch) G(id int) float64 { return s.g[id] }

// H returns the heuristic estimate to the goal.
func (s *Scratch) H(id int) float64 { return s.h[id] }

// F returns G+H.
func (s *Scratch) F(id int) float64 { return s.f[id] }

// SetG sets g and recomputes f.
func (s *Scratch) SetG(id int, g float64) {
	s.g[id] = g
	s.f[id] = g + s.h[id]
}

// SetH sets h and recomputes f.
func (s *Scratch) SetH(id int, h float64) {
	s.h[id] = h
	s.f[id] = s.g[id] + h
}

// ZeroFGH zeroes g, h and f.
func (s *Scratch) ZeroFGH(id int) {
	s.g[id], s.h[id], s.f[id] = 0, 0, 0
}

// Parent returns the predecessor ID or NoParent.
func (s *Scratch) Parent(id int) int { return s.parent[id] }

// SetParent records parent as the predecessor of id.
func (s *Scratch) SetParent(id, parent int) { s.parent[id] = parent }

// IsOpen reports whether id is on the open list.
func (s *Scratch) IsOpen(id int) bool { return s.list[id] == onOpen }

// IsClosed reports whether id is on the closed list.
func (s *Scratch) IsClosed(id int) bool { return s.list[id] == onClosed }

// Open moves id onto the open list.
func (s *Scratch) Open(id int) { s.list[id] = onOpen }

// Close moves id onto the closed list, taking it off the open list.
func (s *Scratch) Close(id int) { s.list[id] = onClosed }

// State returns a snapshot of id's search state.
func (s *Scratch) State(id int) NodeState {
	return NodeState{
		G:      s.g[id],
		H:      s.h[id],
		F:      s.f[id],
		Open:   s.list[id] == onOpen,
		Closed: s.list[id] == onClosed,
		Parent: s.parent[id],
	}
}

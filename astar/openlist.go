package astar

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridstar/grid"
)

// openItem is one heap entry. seq is the order in which the node first
// entered the open list and breaks f ties, so the heap selects exactly the
// node a first-match linear scan over the open list would.
type openItem struct {
	id  int
	seq int
	f   float64
	g   float64
}

func lessOpen(a, b openItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// openList is a min-heap keyed by (f, seq) with lazy decrease-key: an
// improved node is pushed again and the outdated entry is dropped on pop.
type openList struct {
	h    *heap.Heap[openItem]
	seq  []int
	next int
}

func newOpenList(n int) *openList {
	return &openList{
		h:   heap.New[openItem](lessOpen),
		seq: make([]int, n),
	}
}

// reset empties the list for a new search.
func (l *openList) reset() {
	l.h = heap.New[openItem](lessOpen)
	l.next = 0
}

// push adds a node entering the open list for the first time.
func (l *openList) push(s *grid.Scratch, id int) {
	l.seq[id] = l.next
	l.next++
	l.h.Push(openItem{id: id, seq: l.seq[id], f: s.F(id), g: s.G(id)})
}

// update re-queues an open node whose g just decreased.
func (l *openList) update(s *grid.Scratch, id int) {
	l.h.Push(openItem{id: id, seq: l.seq[id], f: s.F(id), g: s.G(id)})
}

// pop removes the open node with minimal f, skipping outdated entries.
func (l *openList) pop(s *grid.Scratch) (int, bool) {
	for {
		it, ok := l.h.Pop()
		if !ok {
			return 0, false
		}
		if !s.IsOpen(it.id) || it.g != s.G(it.id) {
			continue
		}

		return it.id, true
	}
}

package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/grid"
)

// newListScratch returns a scratch for a 1×n open grid and an empty list.
func newListScratch(t *testing.T, n int) (*grid.Scratch, *openList) {
	t.Helper()
	g, err := grid.FromMatrix([][]int{make([]int, n)})
	require.NoError(t, err)
	return g.NewScratch(), newOpenList(n)
}

// enter opens id with the given g and h and pushes it.
func enter(s *grid.Scratch, l *openList, id int, g, h float64) {
	s.SetH(id, h)
	s.SetG(id, g)
	s.Open(id)
	l.push(s, id)
}

// drain pops until empty, closing each node like the search loop does.
func drain(s *grid.Scratch, l *openList) []int {
	var order []int
	for {
		id, ok := l.pop(s)
		if !ok {
			return order
		}
		s.Close(id)
		order = append(order, id)
	}
}

func TestOpenList_Order(t *testing.T) {
	cases := []struct {
		name string
		g, h []float64 // per node, pushed in id order
		want []int
	}{
		{"LowestFFirst", []float64{3, 1, 2}, []float64{0, 0, 0}, []int{1, 2, 0}},
		{"TiesByInsertion", []float64{1, 1, 1, 1}, []float64{1, 1, 1, 1}, []int{0, 1, 2, 3}},
		{"TieOnFNotG", []float64{0, 2, 1}, []float64{2, 0, 1}, []int{0, 1, 2}},
		{"MixedTies", []float64{2, 1, 2, 1}, []float64{0, 0, 0, 0}, []int{1, 3, 0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, l := newListScratch(t, len(tc.g))
			for id := range tc.g {
				enter(s, l, id, tc.g[id], tc.h[id])
			}
			assert.Equal(t, tc.want, drain(s, l))
		})
	}
}

// TestOpenList_UpdateKeepsInsertionOrder: a node whose g drops while open
// keeps the place it took when first opened, so it beats a later node of
// equal f.
func TestOpenList_UpdateKeepsInsertionOrder(t *testing.T) {
	cases := []struct {
		name    string
		updateG float64
		want    []int
	}{
		{"TieGoesToEarlierNode", 2, []int{0, 1, 2}},
		{"StrictlyBetterFirst", 1, []int{0, 1, 2}},
		{"StillWorse", 3.5, []int{1, 2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, l := newListScratch(t, 3)
			enter(s, l, 0, 4, 1) // f=5, opened first
			enter(s, l, 1, 2, 1) // f=3
			enter(s, l, 2, 3, 1) // f=4

			s.SetG(0, tc.updateG)
			l.update(s, 0)

			assert.Equal(t, tc.want, drain(s, l))
		})
	}
}

// TestOpenList_StaleEntriesSkipped: every update leaves an outdated entry
// behind and none of them is returned.
func TestOpenList_StaleEntriesSkipped(t *testing.T) {
	s, l := newListScratch(t, 2)
	enter(s, l, 0, 9, 0)
	enter(s, l, 1, 5, 0)
	for _, g := range []float64{8, 6, 4} {
		s.SetG(0, g)
		l.update(s, 0)
	}

	assert.Equal(t, []int{0, 1}, drain(s, l))

	l.reset()
	_, ok := l.pop(s)
	assert.False(t, ok)
}

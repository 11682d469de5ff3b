// File: grid/clearance_test.go
package grid

import (
	"errors"
	"reflect"
	"testing"
)

// TestMinClearance_BasicLine tests a 1×3 line with one blocked cell between
// two open cells. Grid: [0,1,0]. Expected cost 1, path through the wall.
func TestMinClearance_BasicLine(t *testing.T) {
	g := mustMatrix(t, [][]int{{0, 1, 0}})

	path, cost, err := g.MinClearance(Pos(0, 0), Pos(2, 0), false)
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []Position{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestMinClearance_MediumRow needs three conversions on [0,1,1,1,0].
func TestMinClearance_MediumRow(t *testing.T) {
	g := mustMatrix(t, [][]int{{0, 1, 1, 1, 0}})
	path, cost, err := g.MinClearance(Pos(0, 0), Pos(4, 0), false)
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestMinClearance_Detour prefers a free detour over breaking a wall.
// Grid:
//
//	0 1 0
//	0 0 0
func TestMinClearance_Detour(t *testing.T) {
	g := mustMatrix(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	path, cost, err := g.MinClearance(Pos(0, 0), Pos(2, 0), false)
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if path[0] != Pos(0, 0) || path[len(path)-1] != Pos(2, 0) {
		t.Errorf("path endpoints = %v; want (0,0)…(2,0)", path)
	}
}

// TestMinClearance_OutOfBounds rejects off-grid endpoints.
func TestMinClearance_OutOfBounds(t *testing.T) {
	g := mustMatrix(t, [][]int{{0}})
	if _, _, err := g.MinClearance(Pos(0, 0), Pos(1, 0), true); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v; want ErrOutOfBounds", err)
	}
}

// TestMinClearance_BlockedStart counts a blocked start cell, since a plain
// search cannot leave it.
func TestMinClearance_BlockedStart(t *testing.T) {
	g := mustMatrix(t, [][]int{{1, 0, 0}})

	path, cost, err := g.MinClearance(Pos(0, 0), Pos(2, 0), false)
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []Position{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	// blocked start and goal on the same cell
	if _, cost, _ = g.MinClearance(Pos(0, 0), Pos(0, 0), false); cost != 1 {
		t.Errorf("same blocked cell cost = %d; want 1", cost)
	}
	// walkable start stays free
	if _, cost, _ = g.MinClearance(Pos(1, 0), Pos(2, 0), false); cost != 0 {
		t.Errorf("open cost = %d; want 0", cost)
	}
}

// TestMinClearance_WalledIn always joins in-bounds cells.
//
//	0 1 1
//	1 1 1
//	1 1 0
func TestMinClearance_WalledIn(t *testing.T) {
	g := mustMatrix(t, [][]int{
		{0, 1, 1},
		{1, 1, 1},
		{1, 1, 0},
	})
	path, cost, err := g.MinClearance(Pos(0, 0), Pos(2, 2), true)
	if err != nil {
		t.Fatalf("MinClearance error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if len(path) != 3 {
		t.Errorf("path = %v; want 3 cells through (1,1)", path)
	}
}

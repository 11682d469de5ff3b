// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to list the walkable
// regions of a grid under 4-connectivity.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_ConnectedComponents() {
	g, _ := grid.FromMatrix([][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 1, 0, 0},
	})

	comps := g.ConnectedComponents(false)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, id := range comp {
			fmt.Printf(" (%v)", g.Position(id))
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (0,0) (1,0)
	// component 1: (3,0) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: MinClearance
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_MinClearance reports how many obstacles separate two cells.
func ExampleGrid_MinClearance() {
	g, _ := grid.FromMatrix([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	})

	path, cost, _ := g.MinClearance(grid.Pos(0, 0), grid.Pos(2, 2), false)
	fmt.Printf("clear %d cells along:", cost)
	for _, p := range path {
		fmt.Printf(" (%v)", p)
	}
	fmt.Println()

	// Output:
	// clear 1 cells along: (0,0) (1,0) (2,0) (2,1) (2,2)
}

package board_test

import (
	"fmt"

	"github.com/lazork/lazork/board"
)

// ExampleNew builds a small puzzle board and runs the two geometric queries
// the simulator relies on: lattice point → owning cell, and cell → center.
//
// Scenario:
//
//   - 2×3 grid, one fixed Reflect at (0,1), the rest open slots
//   - One emitter entering at the left edge, one target on a cell center
func ExampleNew() {
	b, err := board.New(
		[]string{
			"oAo",
			"ooo",
		},
		board.Stock{1, 0, 1},
		[]board.Emitter{{Pos: board.Point{X: 0, Y: 1}, Dir: board.Delta{DX: 1, DY: 0}}},
		[]board.Point{{X: 5, Y: 3}},
	)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	cell, ok := b.CellAt(board.Point{X: 3, Y: 1})
	fmt.Printf("(3,1) owned by cell (%d,%d): %v\n", cell.Row, cell.Col, ok)
	fmt.Println("center of (1,2):", b.Center(board.Cell{Row: 1, Col: 2}))
	fmt.Println("open slots:", b.SlotCount())
	fmt.Println("reflect stock:", b.Stock().Count(board.Reflect))

	// Output:
	// (3,1) owned by cell (0,1): true
	// center of (1,2): {5 3}
	// open slots: 5
	// reflect stock: 1
}

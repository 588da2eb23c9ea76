package trace_test

import (
	"fmt"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/trace"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Run
////////////////////////////////////////////////////////////////////////////////

// ExampleRun traces one emitter across a 1×3 row with a refractive block in
// the middle cell. The split spawns a transmit copy (carrying on to the
// right edge) and a reflected copy (escaping back through the left edge),
// so both targets end up struck.
//
// Scenario:
//
//   - Grid: o C o, emitter entering at (0,1) heading east
//   - Targets: (6,1) behind the block and (0,1) back at the entry wall
//
// Complexity: O(ceiling) with ceiling = 8·(rows+cols)·10
func ExampleRun() {
	b, err := board.New(
		[]string{"oCo"},
		board.Stock{},
		[]board.Emitter{{Pos: board.Point{X: 0, Y: 1}, Dir: board.Delta{DX: 1, DY: 0}}},
		[]board.Point{{X: 6, Y: 1}, {X: 0, Y: 1}},
	)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	res, err := trace.Run(b, nil)
	if err != nil {
		fmt.Println("trace failed:", err)
		return
	}

	fmt.Println("solved:", res.Solved(b))
	fmt.Printf("targets struck: %d/%d\n", res.HitCount(), b.TargetCount())
	fmt.Println("beams:", res.Beams)

	// Output:
	// solved: true
	// targets struck: 2/2
	// beams: 2
}

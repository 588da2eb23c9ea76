package render_test

import (
	"os"
	"time"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/render"
	"github.com/lazork/lazork/solve"
)

// ExampleText renders the report for a solved 2×1 mirror puzzle.
func ExampleText() {
	b, err := board.New([]string{"oo"}, board.Stock{1, 0, 0},
		[]board.Emitter{{Pos: board.Point{X: 0, Y: 0}, Dir: board.Delta{DX: 1, DY: 1}}},
		[]board.Point{{X: 2, Y: 0}})
	if err != nil {
		return
	}
	res := &solve.Result{
		Outcome:     solve.Solved,
		Placement:   board.Placement{{Row: 0, Col: 0}: board.Reflect},
		Hits:        map[board.Point]struct{}{{X: 2, Y: 0}: {}},
		HitCount:    1,
		TargetCount: 1,
		Nodes:       7,
		SimCalls:    5,
		Workers:     1,
		Elapsed:     2 * time.Millisecond,
	}

	_ = render.Text(os.Stdout, b, res, render.WithColor(render.ColorNever))

	// Output:
	// outcome: solved
	// targets: 1/1
	// elapsed: 2ms
	// search: seed 0 workers 1 nodes 7 sims 5
	// board:
	//   a o
	// placed:
	//   a reflect (0,0)
}

// Package solve defines outcomes, results and sentinel errors for the
// placement search of github.com/lazork/lazork.
package solve

import (
	"errors"
	"time"

	"github.com/lazork/lazork/board"
)

// Sentinel errors for solver invocation.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("solve: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrInfeasible is returned when the inventory holds more items than
	// there are open slots: no placement can exist, detected before any
	// simulation runs. Distinct from exhaustive search failure.
	ErrInfeasible = errors.New("solve: more inventory items than open slots")
)

// DefaultSeeds is the seed set the parallel meta-solver uses when the
// caller supplies none. Each seed produces a different slot-shuffle order.
var DefaultSeeds = []int64{0, 1, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// Outcome classifies how a search attempt ended.
type Outcome int

const (
	// Solved: a feasible placement striking every target was found.
	Solved Outcome = iota
	// Exhausted: all reachable states were proven infeasible, so no
	// solution exists. A normal outcome, not an error.
	Exhausted
	// TimedOut: the wall-clock budget expired before success or
	// exhaustion. A normal outcome carrying the best partial result.
	TimedOut
	// Infeasible: more inventory than open slots; rejected before search.
	Infeasible
)

// String returns the outcome name used in reports.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case TimedOut:
		return "timed_out"
	case Infeasible:
		return "infeasible"
	default:
		return "invalid"
	}
}

// Result holds the outcome of one search attempt (single or parallel):
//   - Placement: the feasible placement on success, otherwise the best
//     partial placement found (possibly empty). Nil when Infeasible.
//   - Hits: the targets struck under Placement.
//   - HitCount/TargetCount: struck versus declared targets.
//   - Nodes: search states expanded; SimCalls: feasibility oracle runs.
//   - MemoHits/MemoStores: transposition pruning statistics.
//   - Seed: the slot-shuffle seed that produced Placement (the winning
//     worker's seed for the parallel variant).
//   - Workers: worker count (1 for the single-threaded solver).
//   - Elapsed: wall-clock time spent.
type Result struct {
	Outcome     Outcome
	Placement   board.Placement
	Hits        map[board.Point]struct{}
	HitCount    int
	TargetCount int
	Nodes       int64
	SimCalls    int64
	MemoHits    int64
	MemoStores  int64
	Seed        int64
	Workers     int
	Elapsed     time.Duration
}

// Solved reports whether the attempt found a feasible placement.
func (r *Result) Solved() bool { return r.Outcome == Solved }

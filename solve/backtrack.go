package solve

import (
	"context"
	"time"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/trace"
)

// tryOrder is the fixed kind preference at each slot: mirrors first, then
// splitters, then absorbers.
var tryOrder = [...]board.BlockKind{board.Reflect, board.Refract, board.Opaque}

// Run explores assignments of inventory items to heuristically ordered
// slots, using the beam simulator as its feasibility oracle, under the
// configured wall-clock budget. It returns a feasible placement, or the
// best partial found, classified by Result.Outcome: exhaustion and
// time-out are normal outcomes, not errors.
// Returns ErrNilBoard or ErrOptionViolation for malformed calls, and
// ErrInfeasible (alongside a reportable Result) when the inventory exceeds
// the open slots, which is detected before any simulation.
// Complexity: O(4^S) states worst case, S = open slots; memoization and
// the goal-test-first discipline cut the practical tree far below that.
func Run(ctx context.Context, b *board.Board, opts ...Option) (*Result, error) {
	// 1. Validate input board
	if b == nil {
		return nil, ErrNilBoard
	}
	// 2. Apply options and catch violations immediately
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return run(ctx, b, o)
}

// run is the option-parsed core, shared with the parallel meta-solver.
func run(ctx context.Context, b *board.Board, o SolveOptions) (*Result, error) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	res := &Result{
		Seed:        o.Seed,
		Workers:     1,
		TargetCount: b.TargetCount(),
	}

	// 3. Infeasible configuration fails fast, before any simulation.
	if b.Stock().Total() > b.SlotCount() {
		res.Outcome = Infeasible
		res.Elapsed = time.Since(start)
		o.Logger.Debug("placement infeasible",
			"stock", b.Stock().Total(), "slots", b.SlotCount())
		return res, ErrInfeasible
	}

	// 4. Arm the wall-clock deadline.
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	// 5. Order slots by the proximity heuristic under this seed.
	s := &searcher{
		ctx:       ctx,
		board:     b,
		opts:      o,
		slots:     OrderSlots(b, o.Seed, o.Alpha, o.Window),
		placement: make(board.Placement),
		memo:      newMemoTable(),
		bestHits:  -1,
	}
	s.assign = make([]uint8, len(s.slots))
	o.Logger.Debug("search starting", "slots", len(s.slots),
		"stock", b.Stock().Total(), "targets", res.TargetCount, "seed", o.Seed)

	// 6. Search from slot 0 with the full inventory snapshot.
	solved, aborted := s.search(0, b.Stock())

	// 7. Assemble the reportable result.
	res.Nodes = s.nodes
	res.SimCalls = s.simCalls
	res.MemoHits = s.memo.hits
	res.MemoStores = s.memo.stores
	res.Placement = s.bestPlacement
	res.Hits = s.bestHitSet
	res.HitCount = len(s.bestHitSet)
	switch {
	case solved:
		res.Outcome = Solved
	case aborted:
		res.Outcome = TimedOut
	default:
		res.Outcome = Exhausted
	}
	res.Elapsed = time.Since(start)
	o.Logger.Debug("search finished", "outcome", res.Outcome.String(),
		"hits", res.HitCount, "nodes", res.Nodes, "sims", res.SimCalls,
		"elapsed", res.Elapsed)

	return res, nil
}

// searcher holds the mutable state of one backtracking attempt.
type searcher struct {
	ctx       context.Context
	board     *board.Board
	opts      SolveOptions
	slots     []board.Cell
	placement board.Placement
	assign    []uint8 // 0 = empty, otherwise 1 + kind; prefix mirrors placement
	memo      *memoTable
	nodes     int64
	simCalls  int64

	bestHits      int
	bestPlacement board.Placement
	bestHitSet    map[board.Point]struct{}
}

// search expands the state (slot index idx, current placement, remaining
// stock). Stock travels by value, one snapshot per level, so undo only
// concerns the placement map. The winning placement is kept intact: the
// success path returns before any undo runs.
func (s *searcher) search(idx int, stock board.Stock) (solved, aborted bool) {
	// 1. Deadline check at every node; an abort proves nothing.
	if s.ctx.Err() != nil {
		return false, true
	}
	s.nodes++

	// 2. Transposition pruning before spending a simulation.
	if s.memo.pruned(idx, s.assign) {
		return false, false
	}

	// 3. Goal test before any expansion: a placement may already win with
	// slots and inventory to spare.
	if s.goal() {
		return true, false
	}

	// 4. Dead end past the last slot.
	if idx >= len(s.slots) {
		return false, false
	}

	// 5. Try each kind with remaining stock, in fixed preference order.
	cell := s.slots[idx]
	for _, k := range tryOrder {
		rest, ok := stock.Take(k)
		if !ok {
			continue
		}
		s.placement[cell] = k
		s.assign[idx] = 1 + uint8(k)
		solved, aborted = s.search(idx+1, rest)
		if solved {
			return true, false
		}
		delete(s.placement, cell)
		s.assign[idx] = 0
		if aborted {
			return false, true
		}
	}

	// 6. Leaving the slot empty is always a legal choice.
	solved, aborted = s.search(idx+1, stock)
	if solved || aborted {
		return solved, aborted
	}

	// 7. Subtree fully explored without success: remember the proof.
	s.memo.store(idx, s.assign)

	return false, false
}

// goal invokes the oracle on the current placement and tracks the best
// partial result by struck-target count.
func (s *searcher) goal() bool {
	s.simCalls++
	res, _ := trace.Run(s.board, s.placement,
		trace.WithConvention(s.opts.Convention),
		trace.WithRefractMode(s.opts.Refract),
		trace.WithTrajectory(false))
	if res == nil {
		return false
	}
	if res.HitCount() > s.bestHits {
		s.bestHits = res.HitCount()
		s.bestPlacement = s.placement.Clone()
		s.bestHitSet = res.Hits
	}

	return res.HitCount() == s.board.TargetCount()
}

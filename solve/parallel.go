package solve

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lazork/lazork/board"
)

// errWinner signals the group that a worker found a feasible placement.
// It never escapes Parallel.
var errWinner = errors.New("solve: winner found")

// Parallel runs independent backtracking searches concurrently, one per
// seed, each over its own clone of the board with a private slot-shuffle
// order. The first feasible placement wins and cancels the rest; results
// need not arrive in seed order. If the total budget expires first, the
// attempt with the most struck targets is returned as best effort (its
// placement may be empty, or nil if no attempt completed a single goal
// test). Any worker proving exhaustion settles the question for all seeds:
// exploration order cannot change what is reachable.
// Returns the same errors as Run for malformed calls and infeasible boards.
func Parallel(ctx context.Context, b *board.Board, opts ...Option) (*Result, error) {
	start := time.Now()
	// 1. Validate input and options.
	if b == nil {
		return nil, ErrNilBoard
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2. Infeasibility is a property of the board, not the seed: reject
	// once, before spawning anything.
	if b.Stock().Total() > b.SlotCount() {
		o.Logger.Debug("placement infeasible",
			"stock", b.Stock().Total(), "slots", b.SlotCount())
		return &Result{
			Outcome:     Infeasible,
			TargetCount: b.TargetCount(),
			Seed:        -1,
			Elapsed:     time.Since(start),
		}, ErrInfeasible
	}

	// 3. Resolve the pool shape: seeds, workers, per-seed budget.
	seeds := o.Seeds
	if len(seeds) == 0 {
		seeds = DefaultSeeds
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.NumCPU() - 1
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(seeds) {
		workers = len(seeds)
	}
	perJob := perJobBudget(o.TimeLimit, len(seeds))
	o.Logger.Debug("parallel search starting", "seeds", len(seeds),
		"workers", workers, "per_job", perJob)

	// 4. The total deadline is authoritative; per-worker budgets are
	// advisory sub-slices of it.
	runCtx := ctx
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(runCtx)
	jobs := make(chan int64)
	results := make(chan *Result, len(seeds))

	// 5. Seed producer.
	g.Go(func() error {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	// 6. Workers: each job gets a private board clone and a private
	// option set; no state is shared across attempts.
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for seed := range jobs {
				wo := o
				wo.Seed = seed
				wo.TimeLimit = perJob
				wo.Logger = o.Logger.With("seed", seed)
				res, err := run(gctx, b.Clone(), wo)
				if err != nil {
					return err
				}
				results <- res
				if res.Solved() {
					return errWinner // cancels the group context
				}
				if gctx.Err() != nil {
					return nil
				}
			}
			return nil
		})
	}

	err = g.Wait()
	close(results)
	if err != nil && !errors.Is(err, errWinner) {
		return nil, err
	}

	// 7. Aggregate: first success in completion order wins; otherwise the
	// highest struck-target count; exhaustion anywhere proves exhaustion.
	meta := &Result{
		Outcome:     TimedOut,
		TargetCount: b.TargetCount(),
		Workers:     workers,
		Seed:        -1,
	}
	var best *Result
	exhausted := false
	for res := range results {
		meta.Nodes += res.Nodes
		meta.SimCalls += res.SimCalls
		meta.MemoHits += res.MemoHits
		meta.MemoStores += res.MemoStores
		if res.Outcome == Exhausted {
			exhausted = true
		}
		switch {
		case best == nil:
			best = res
		case best.Solved():
			// first success already chosen
		case res.Solved() || res.HitCount > best.HitCount:
			best = res
		}
	}
	if best != nil {
		meta.Outcome = best.Outcome
		meta.Placement = best.Placement
		meta.Hits = best.Hits
		meta.HitCount = best.HitCount
		meta.Seed = best.Seed
	}
	if !meta.Solved() && exhausted {
		meta.Outcome = Exhausted
	}
	meta.Elapsed = time.Since(start)
	o.Logger.Debug("parallel search finished", "outcome", meta.Outcome.String(),
		"hits", meta.HitCount, "seed", meta.Seed, "elapsed", meta.Elapsed)

	return meta, nil
}

// perJobBudget gives each seed a fair share of the total budget with slack
// reserved for coordination, floored at five seconds. The total deadline
// still caps every job. Zero means no limit.
func perJobBudget(total time.Duration, seeds int) time.Duration {
	if total <= 0 {
		return 0
	}
	per := time.Duration(0.85 * float64(total) / float64(seeds))
	if per < 5*time.Second {
		per = 5 * time.Second
	}

	return per
}

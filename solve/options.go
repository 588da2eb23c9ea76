package solve

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lazork/lazork/trace"
)

// Option configures solver behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the solver is invoked.
type Option func(*SolveOptions)

// SolveOptions holds parameters shared by Board and Parallel.
type SolveOptions struct {
	// TimeLimit is the wall-clock budget. Zero disables the deadline and
	// lets the search run to exhaustion.
	TimeLimit time.Duration

	// Seed drives the slot-shuffle tie-breaking of the ordering heuristic.
	Seed int64

	// Alpha weights target proximity against emitter proximity in the
	// slot ordering. Values above 1 bias toward targets.
	Alpha float64

	// Window is the width of the contiguous sorted-order windows the seed
	// shuffles. 0 or 1 disables shuffling.
	Window int

	// Convention and Refract are forwarded to the simulator.
	Convention trace.Convention
	Refract    trace.RefractMode

	// Logger receives coarse progress events. Defaults to a discard
	// handler; libraries never log through a global.
	Logger *slog.Logger

	// Seeds is the seed set for the parallel meta-solver. Empty means
	// DefaultSeeds.
	Seeds []int64

	// Workers caps the parallel worker pool. Zero derives the count from
	// available CPUs.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultSolveOptions returns a SolveOptions with defaults matching the
// stock puzzle distribution: 180s budget, seed 0, alpha 1.5, window 4,
// center interaction, split refraction.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		TimeLimit:  180 * time.Second,
		Seed:       0,
		Alpha:      1.5,
		Window:     4,
		Convention: trace.CenterInteraction,
		Refract:    trace.RefractSplit,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithTimeLimit sets the wall-clock budget.
//
//	d > 0: abort the search once d elapses
//	d == 0: no deadline
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *SolveOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithSeed sets the slot-shuffle seed for the single-threaded solver.
func WithSeed(seed int64) Option {
	return func(o *SolveOptions) { o.Seed = seed }
}

// WithAlpha sets the target-proximity weight of the slot ordering.
// Must be positive.
func WithAlpha(a float64) Option {
	return func(o *SolveOptions) {
		if a <= 0 {
			o.err = fmt.Errorf("%w: Alpha must be positive (%v)", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithShuffleWindow sets the width of the shuffled windows.
//
//	w > 1: shuffle contiguous windows of w slots
//	w == 0 or w == 1: no shuffling
//	w < 0: invalid option → ErrOptionViolation
func WithShuffleWindow(w int) Option {
	return func(o *SolveOptions) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Window cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Window = w
	}
}

// WithConvention forwards the interaction convention to the simulator.
func WithConvention(c trace.Convention) Option {
	return func(o *SolveOptions) {
		if c != trace.CenterInteraction && c != trace.BoundaryInteraction {
			o.err = fmt.Errorf("%w: unknown convention %d", ErrOptionViolation, c)
			return
		}
		o.Convention = c
	}
}

// WithRefractMode forwards the refraction semantics to the simulator.
func WithRefractMode(m trace.RefractMode) Option {
	return func(o *SolveOptions) {
		if m != trace.RefractSplit && m != trace.RefractBend {
			o.err = fmt.Errorf("%w: unknown refract mode %d", ErrOptionViolation, m)
			return
		}
		o.Refract = m
	}
}

// WithLogger routes progress events to l. A nil logger keeps the default
// discard handler.
func WithLogger(l *slog.Logger) Option {
	return func(o *SolveOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSeeds sets the seed set for the parallel meta-solver. An empty or
// nil set keeps DefaultSeeds.
func WithSeeds(seeds []int64) Option {
	return func(o *SolveOptions) {
		if len(seeds) == 0 {
			return
		}
		o.Seeds = append([]int64(nil), seeds...)
	}
}

// WithWorkers caps the parallel worker pool.
//
//	n > 0: run at most n workers
//	n == 0: derive from runtime.NumCPU
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SolveOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// buildOptions folds opts over the defaults and surfaces the first
// violation.
func buildOptions(opts []Option) (SolveOptions, error) {
	o := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

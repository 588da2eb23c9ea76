// Package trace defines options, result types and sentinel errors for the
// beam simulator of github.com/lazork/lazork.
package trace

import (
	"errors"
	"fmt"

	"github.com/lazork/lazork/board"
)

// Sentinel errors for trace execution.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("trace: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Convention selects where beams interact with obstacles. The two models
// are not numerically equivalent: declared emitter/target coordinates mix
// boundary and center positions, so the right choice depends on the data.
type Convention int

const (
	// CenterInteraction: obstacles act at cell centers (odd/odd lattice
	// points). Reflection axis follows the travel direction: a beam with no
	// vertical motion flips its horizontal component, any beam with
	// vertical motion flips its vertical component. Target matching is
	// exact.
	CenterInteraction Convention = iota

	// BoundaryInteraction: obstacles act at cell walls (even lattice
	// components), owned by the cell the beam is entering. Vertical walls
	// flip the horizontal component, horizontal walls flip the vertical
	// component; corners resolve the vertical wall first. Target matching
	// tolerates one lattice step (Chebyshev).
	BoundaryInteraction
)

// String returns the convention name used in reports and CLI flags.
func (c Convention) String() string {
	switch c {
	case CenterInteraction:
		return "center"
	case BoundaryInteraction:
		return "boundary"
	default:
		return "invalid"
	}
}

// RefractMode selects what a Refract obstacle does to a beam.
type RefractMode int

const (
	// RefractSplit spawns a straight-through copy plus a reflected copy.
	RefractSplit RefractMode = iota

	// RefractBend continues a single beam in the reflected direction.
	RefractBend
)

// String returns the mode name used in reports and CLI flags.
func (m RefractMode) String() string {
	switch m {
	case RefractSplit:
		return "split"
	case RefractBend:
		return "bend"
	default:
		return "invalid"
	}
}

// Option configures trace behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*TraceOptions)

// TraceOptions holds the tunable parameters of one simulation run.
type TraceOptions struct {
	// Convention selects center or boundary interaction.
	Convention Convention

	// Refract selects split or bend semantics for Refract obstacles.
	Refract RefractMode

	// Trajectory enables recording of every lattice point visited, in
	// visit order. Disable in hot search loops where only the hit set
	// matters.
	Trajectory bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a TraceOptions with defaults:
// CenterInteraction, RefractSplit, trajectory recording enabled.
func DefaultOptions() TraceOptions {
	return TraceOptions{
		Convention: CenterInteraction,
		Refract:    RefractSplit,
		Trajectory: true,
	}
}

// WithConvention selects the interaction convention.
func WithConvention(c Convention) Option {
	return func(o *TraceOptions) {
		if c != CenterInteraction && c != BoundaryInteraction {
			o.err = fmt.Errorf("%w: unknown convention %d", ErrOptionViolation, c)
			return
		}
		o.Convention = c
	}
}

// WithRefractMode selects split or bend refraction.
func WithRefractMode(m RefractMode) Option {
	return func(o *TraceOptions) {
		if m != RefractSplit && m != RefractBend {
			o.err = fmt.Errorf("%w: unknown refract mode %d", ErrOptionViolation, m)
			return
		}
		o.Refract = m
	}
}

// WithTrajectory toggles trajectory recording.
func WithTrajectory(enabled bool) Option {
	return func(o *TraceOptions) { o.Trajectory = enabled }
}

// beamState is one unit of simulation work: a lattice position plus the
// direction the beam left it with. States are the cycle-guard keys.
type beamState struct {
	pos board.Point
	dir board.Delta
}

// Result holds the outcome of one simulation run:
//   - Hits: the declared target points struck by at least one beam.
//   - Trajectory: every lattice point visited, in visit order (emitters in
//     board order, each explored breadth-first). Empty when recording is
//     disabled.
//   - Steps: total beam advances across all emitters.
//   - Beams: total beams processed, spawned copies included.
type Result struct {
	Hits       map[board.Point]struct{}
	Trajectory []board.Point
	Steps      int
	Beams      int
}

// HitCount returns the number of distinct targets struck.
func (r *Result) HitCount() int { return len(r.Hits) }

// Solved reports whether every declared target of b was struck.
func (r *Result) Solved(b *board.Board) bool {
	return b != nil && len(r.Hits) == b.TargetCount()
}

// Package board defines core types and sentinel errors for the
// board subpackage of github.com/lazork/lazork.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and queries.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("board: all grid rows must have the same length")
	// ErrUnknownToken indicates a grid token outside the {o,x,A,B,C} alphabet.
	ErrUnknownToken = errors.New("board: unknown grid token")
	// ErrSlotOverlap indicates an open slot declared on a fixed-obstacle cell.
	ErrSlotOverlap = errors.New("board: open slot overlaps a fixed obstacle")
	// ErrCellRange indicates a cell outside the grid dimensions.
	ErrCellRange = errors.New("board: cell outside grid dimensions")
	// ErrNegativeStock indicates a negative inventory count.
	ErrNegativeStock = errors.New("board: stock counts must be non-negative")
	// ErrBadDirection indicates an emitter direction with components outside
	// {-1,0,1} or with both components zero.
	ErrBadDirection = errors.New("board: emitter direction components must be -1, 0 or 1 and not both zero")
	// ErrBadKind indicates a block kind outside the closed {Reflect,Opaque,Refract} set.
	ErrBadKind = errors.New("board: unknown block kind")
)

// BlockKind enumerates the three obstacle behaviors a cell can hold.
// The set is closed; interaction logic switches exhaustively over it.
type BlockKind uint8

const (
	// Reflect bounces a beam 90 degrees off the incidence axis.
	Reflect BlockKind = iota
	// Opaque absorbs a beam.
	Opaque
	// Refract splits a beam into a straight-through copy and a reflected copy.
	Refract

	numKinds = 3
)

// String returns the lowercase kind name, or "invalid" outside the closed set.
func (k BlockKind) String() string {
	switch k {
	case Reflect:
		return "reflect"
	case Opaque:
		return "opaque"
	case Refract:
		return "refract"
	default:
		return "invalid"
	}
}

// Token returns the grid letter for the kind: 'A' Reflect, 'B' Opaque, 'C' Refract.
func (k BlockKind) Token() byte {
	switch k {
	case Reflect:
		return 'A'
	case Opaque:
		return 'B'
	case Refract:
		return 'C'
	default:
		return '?'
	}
}

// KindForToken maps a grid letter to its BlockKind.
// The second result is false for any byte outside {A,B,C}.
func KindForToken(t byte) (BlockKind, bool) {
	switch t {
	case 'A':
		return Reflect, true
	case 'B':
		return Opaque, true
	case 'C':
		return Refract, true
	default:
		return 0, false
	}
}

// Cell addresses a grid cell by row and column, zero-based.
type Cell struct {
	Row, Col int
}

// Point is a doubled-lattice coordinate. Cell (r,c) is centered at
// (2c+1, 2r+1); odd/odd points are obstacle centers, even components lie on
// cell boundaries.
type Point struct {
	X, Y int
}

// Delta is an integer direction vector with components in {-1,0,1}.
type Delta struct {
	DX, DY int
}

// valid reports whether the vector is non-zero with unit components.
func (d Delta) valid() bool {
	if d.DX == 0 && d.DY == 0 {
		return false
	}
	return d.DX >= -1 && d.DX <= 1 && d.DY >= -1 && d.DY <= 1
}

// Emitter is a beam source: a starting lattice point plus a direction.
type Emitter struct {
	Pos Point
	Dir Delta
}

// Stock holds the inventory count per BlockKind, indexed by the kind value:
// Stock{2,1,0} means two Reflect, one Opaque, zero Refract. Stock is a small
// value type; the solver passes snapshots by value through recursion, so no
// undo path can corrupt the counts.
type Stock [numKinds]int

// Count returns the remaining items of kind k.
func (s Stock) Count(k BlockKind) int { return s[k] }

// Total returns the number of items across all kinds.
// Complexity: O(1).
func (s Stock) Total() int { return s[Reflect] + s[Opaque] + s[Refract] }

// Take returns a copy of s with one item of kind k removed.
// The second result is false when no item of kind k remains; the
// returned Stock is then unchanged.
func (s Stock) Take(k BlockKind) (Stock, bool) {
	if s[k] <= 0 {
		return s, false
	}
	s[k]--
	return s, true
}

// Placement maps open-slot cells to the obstacle kind tentatively placed
// there. It is the solver's working hypothesis: owned by exactly one search
// attempt and never shared across goroutines without Clone.
type Placement map[Cell]BlockKind

// Clone returns an independent copy of the placement.
// Complexity: O(len(p)).
func (p Placement) Clone() Placement {
	out := make(Placement, len(p))
	for c, k := range p {
		out[c] = k
	}
	return out
}

// validateStock rejects negative counts.
func validateStock(s Stock) error {
	for k := BlockKind(0); k < numKinds; k++ {
		if s[k] < 0 {
			return fmt.Errorf("%w: %s = %d", ErrNegativeStock, k, s[k])
		}
	}
	return nil
}

// validateEmitters rejects zero or non-unit direction vectors.
func validateEmitters(es []Emitter) error {
	for i, e := range es {
		if !e.Dir.valid() {
			return fmt.Errorf("%w: emitter %d has direction (%d,%d)", ErrBadDirection, i, e.Dir.DX, e.Dir.DY)
		}
	}
	return nil
}

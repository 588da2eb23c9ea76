// Package trace simulates beams over a board: each emitter's beam advances
// one lattice step at a time, interacting with fixed and placed obstacles,
// until it leaves the lattice, is absorbed, or revisits a state.
package trace

import (
	"github.com/lazork/lazork/board"
)

// Run traces every emitter of b against the union of fixed obstacles and
// the placed hypothesis, applying any number of functional Options.
// It reports which declared targets were struck and, when enabled, the full
// trajectory. Absence of a target in the hit set is not an error.
// Returns ErrNilBoard for a nil board and ErrOptionViolation for bad options.
// Complexity: O(E × ceiling) time, O(ceiling) memory, with E = emitters and
// ceiling the perimeter-derived step bound.
func Run(b *board.Board, placed board.Placement, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		board:   b,
		placed:  placed,
		opts:    o,
		ceiling: stepCeiling(o.Convention, b.Rows(), b.Cols()),
		points:  make(map[board.Point]struct{}),
		res:     &Result{Hits: make(map[board.Point]struct{})},
	}
	// Each emitter explores with its own queue and visited set, so beams
	// from different emitters never prune each other.
	for _, e := range b.Emitters() {
		w.runEmitter(e)
	}
	w.matchTargets()

	return w.res, nil
}

// walker encapsulates mutable simulation state.
type walker struct {
	board   *board.Board
	placed  board.Placement
	opts    TraceOptions
	ceiling int
	queue   []beamState
	visited map[beamState]struct{}
	steps   int
	points  map[board.Point]struct{}
	res     *Result
}

// runEmitter resets the per-emitter state and drains the work list.
func (w *walker) runEmitter(e board.Emitter) {
	w.queue = w.queue[:0]
	w.visited = make(map[beamState]struct{})
	w.steps = 0
	w.spawn(beamState{pos: e.Pos, dir: e.Dir})
	for len(w.queue) > 0 && w.steps < w.ceiling {
		w.step(w.dequeue())
	}
}

// spawn enqueues a genuinely new beam (emitter start or refract copy).
func (w *walker) spawn(s beamState) {
	w.res.Beams++
	w.queue = append(w.queue, s)
}

// push enqueues the continuation of an existing beam.
func (w *walker) push(s beamState) {
	w.queue = append(w.queue, s)
}

// dequeue pops the oldest beam state.
func (w *walker) dequeue() beamState {
	s := w.queue[0]
	w.queue = w.queue[1:]
	return s
}

// step advances beam s by one lattice unit, records the point reached, and
// enqueues whatever continues: nothing (out of bounds, absorbed, or cycle),
// the unchanged beam, a reflected beam, or a refract pair.
func (w *walker) step(s beamState) {
	// 1. Advance one lattice step.
	w.steps++
	w.res.Steps++
	p := board.Point{X: s.pos.X + s.dir.DX, Y: s.pos.Y + s.dir.DY}
	// 2. Leaving the lattice extent terminates the beam.
	if !w.board.InLattice(p) {
		return
	}
	// 3. The point is visited regardless of what happens at it.
	w.record(p)
	// 4. Cycle guard: a (position, direction) state already expanded by
	// this emitter is not expanded again.
	ns := beamState{pos: p, dir: s.dir}
	if _, seen := w.visited[ns]; seen {
		return
	}
	w.visited[ns] = struct{}{}
	// 5. Interaction, if the point denotes one under the convention and
	// the owning cell holds an obstacle.
	if cell, refl, ok := w.incidence(p, s.dir); ok {
		if k, occupied := w.blockAt(cell); occupied {
			w.interact(ns, refl, k)
			return
		}
	}
	// 6. Empty space: continue unchanged.
	w.push(ns)
}

// interact applies the obstacle's rule to the beam arriving at s.pos.
func (w *walker) interact(s beamState, refl board.Delta, k board.BlockKind) {
	switch k {
	case board.Opaque:
		// absorbed, not requeued
	case board.Reflect:
		w.push(beamState{pos: s.pos, dir: refl})
	case board.Refract:
		if w.opts.Refract == RefractSplit {
			w.push(beamState{pos: s.pos, dir: s.dir})
			w.spawn(beamState{pos: s.pos, dir: refl})
			return
		}
		w.push(beamState{pos: s.pos, dir: refl})
	}
}

// record adds p to the visited-point set and, when enabled, the trajectory.
func (w *walker) record(p board.Point) {
	w.points[p] = struct{}{}
	if w.opts.Trajectory {
		w.res.Trajectory = append(w.res.Trajectory, p)
	}
}

// blockAt reports the obstacle occupying cell c, placed or fixed.
func (w *walker) blockAt(c board.Cell) (board.BlockKind, bool) {
	if k, ok := w.placed[c]; ok {
		return k, true
	}
	return w.board.At(c)
}

// incidence resolves whether lattice point p is an interaction point for a
// beam travelling in d under the configured convention. It returns the
// owning cell and the direction a reflection would take.
func (w *walker) incidence(p board.Point, d board.Delta) (board.Cell, board.Delta, bool) {
	if w.opts.Convention == CenterInteraction {
		c, ok := w.board.CellAt(p)
		if !ok {
			return board.Cell{}, d, false
		}
		return c, centerReflect(d), true
	}
	return w.boundaryIncidence(p, d)
}

// centerReflect applies the travel-axis rule: horizontal-only travel flips
// the horizontal component, any vertical motion flips the vertical one.
func centerReflect(d board.Delta) board.Delta {
	if d.DY == 0 {
		return board.Delta{DX: -d.DX, DY: d.DY}
	}
	return board.Delta{DX: d.DX, DY: -d.DY}
}

// boundaryIncidence resolves wall crossings: even x with horizontal motion
// is a vertical wall (checked first, so corners resolve vertically), even y
// with vertical motion a horizontal wall. The owning cell is the one the
// beam is entering. Crossings into cells outside the grid interact with
// nothing.
func (w *walker) boundaryIncidence(p board.Point, d board.Delta) (board.Cell, board.Delta, bool) {
	var c board.Cell
	var refl board.Delta
	switch {
	case p.X%2 == 0 && d.DX != 0:
		c = board.Cell{Row: enteredIndex(p.Y, d.DY), Col: enteredIndex(p.X, d.DX)}
		refl = board.Delta{DX: -d.DX, DY: d.DY}
	case p.Y%2 == 0 && d.DY != 0:
		c = board.Cell{Row: enteredIndex(p.Y, d.DY), Col: enteredIndex(p.X, d.DX)}
		refl = board.Delta{DX: d.DX, DY: -d.DY}
	default:
		return board.Cell{}, d, false
	}
	if c.Row < 0 || c.Row >= w.board.Rows() || c.Col < 0 || c.Col >= w.board.Cols() {
		return board.Cell{}, d, false
	}

	return c, refl, true
}

// enteredIndex resolves one axis of the entered cell. Odd lattice values
// sit inside a cell; even values lie on a wall and pick the side the beam
// moves toward (grazing travel along a wall picks the low-index side).
func enteredIndex(v, dv int) int {
	if v%2 != 0 {
		return (v - 1) / 2
	}
	if dv > 0 {
		return v / 2
	}
	return v/2 - 1
}

// matchTargets fills the hit set: exact matching under CenterInteraction,
// one lattice step of tolerance (Chebyshev) under BoundaryInteraction.
func (w *walker) matchTargets() {
	tol := 0
	if w.opts.Convention == BoundaryInteraction {
		tol = 1
	}
	for _, t := range w.board.Targets() {
		if w.struck(t, tol) {
			w.res.Hits[t] = struct{}{}
		}
	}
}

// struck probes the visited-point set around target t.
func (w *walker) struck(t board.Point, tol int) bool {
	if tol == 0 {
		_, ok := w.points[t]
		return ok
	}
	for dy := -tol; dy <= tol; dy++ {
		for dx := -tol; dx <= tol; dx++ {
			if _, ok := w.points[board.Point{X: t.X + dx, Y: t.Y + dy}]; ok {
				return true
			}
		}
	}

	return false
}

// stepCeiling bounds total advances per emitter by the board perimeter.
// The cycle guard fires first on any repeating path; the ceiling catches
// non-repeating drift.
func stepCeiling(c Convention, rows, cols int) int {
	if c == BoundaryInteraction {
		n := 12 * (rows + cols)
		if n < 64 {
			n = 64
		}
		return n
	}

	return 8 * (rows + cols) * 10
}

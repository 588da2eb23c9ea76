package board

import "fmt"

// Board is the static description of one puzzle: grid dimensions, fixed
// obstacles, open slots, inventory, emitters and targets. It is immutable
// once built; the solver keeps its working state (placement, remaining
// stock) outside the Board.
type Board struct {
	rows, cols int
	fixed      map[Cell]BlockKind
	slots      []Cell
	slotSet    map[Cell]struct{}
	stock      Stock
	emitters   []Emitter
	targets    []Point
	targetSet  map[Point]struct{}
}

// New constructs a Board from grid rows of cell tokens plus inventory,
// emitters and targets. Tokens: 'o' open slot, 'x' blocked, 'A' fixed
// Reflect, 'B' fixed Opaque, 'C' fixed Refract.
// It deep-copies every input, so the caller may reuse its slices.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownToken,
// ErrNegativeStock or ErrBadDirection on invalid input; construction never
// partially succeeds.
// Complexity: O(R×C + emitters + targets) time and memory.
func New(grid []string, stock Stock, emitters []Emitter, targets []Point) (*Board, error) {
	// 1. Validate grid shape.
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(grid), len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	// 2. Derive fixed obstacles and open slots from the token alphabet.
	fixed := make(map[Cell]BlockKind)
	var slots []Cell
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := grid[r][c]
			cell := Cell{Row: r, Col: c}
			switch {
			case t == 'o':
				slots = append(slots, cell)
			case t == 'x':
				// blocked: no placement, no interaction
			default:
				k, ok := KindForToken(t)
				if !ok {
					return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownToken, t, r, c)
				}
				fixed[cell] = k
			}
		}
	}

	return assemble(rows, cols, fixed, slots, stock, emitters, targets)
}

// FromCells constructs a Board from already-derived parts instead of token
// rows. Unlike New it must check that slots and fixed cells are disjoint
// and inside the grid. Useful for building boards programmatically.
// Returns ErrEmptyGrid, ErrCellRange, ErrSlotOverlap, ErrNegativeStock or
// ErrBadDirection on invalid input.
func FromCells(rows, cols int, fixed map[Cell]BlockKind, slots []Cell, stock Stock, emitters []Emitter, targets []Point) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	inGrid := func(c Cell) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}
	fixedCopy := make(map[Cell]BlockKind, len(fixed))
	for c, k := range fixed {
		if !inGrid(c) {
			return nil, fmt.Errorf("%w: fixed cell (%d,%d)", ErrCellRange, c.Row, c.Col)
		}
		if k >= numKinds {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadKind, k, c.Row, c.Col)
		}
		fixedCopy[c] = k
	}
	for _, c := range slots {
		if !inGrid(c) {
			return nil, fmt.Errorf("%w: slot (%d,%d)", ErrCellRange, c.Row, c.Col)
		}
		if _, clash := fixedCopy[c]; clash {
			return nil, fmt.Errorf("%w: cell (%d,%d)", ErrSlotOverlap, c.Row, c.Col)
		}
	}

	return assemble(rows, cols, fixedCopy, slots, stock, emitters, targets)
}

// assemble runs the shared validation and builds the immutable Board.
// fixed is owned by the caller paths above and not copied again.
func assemble(rows, cols int, fixed map[Cell]BlockKind, slots []Cell, stock Stock, emitters []Emitter, targets []Point) (*Board, error) {
	if err := validateStock(stock); err != nil {
		return nil, err
	}
	if err := validateEmitters(emitters); err != nil {
		return nil, err
	}
	b := &Board{
		rows:      rows,
		cols:      cols,
		fixed:     fixed,
		slots:     make([]Cell, len(slots)),
		slotSet:   make(map[Cell]struct{}, len(slots)),
		stock:     stock,
		emitters:  make([]Emitter, len(emitters)),
		targets:   make([]Point, len(targets)),
		targetSet: make(map[Point]struct{}, len(targets)),
	}
	copy(b.slots, slots)
	copy(b.emitters, emitters)
	copy(b.targets, targets)
	for _, c := range slots {
		b.slotSet[c] = struct{}{}
	}
	for _, p := range targets {
		b.targetSet[p] = struct{}{}
	}

	return b, nil
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns.
func (b *Board) Cols() int { return b.cols }

// Stock returns the full inventory the puzzle starts with.
func (b *Board) Stock() Stock { return b.stock }

// SlotCount returns the number of open slots.
func (b *Board) SlotCount() int { return len(b.slots) }

// Slots returns a copy of the open-slot list in grid order.
func (b *Board) Slots() []Cell {
	out := make([]Cell, len(b.slots))
	copy(out, b.slots)
	return out
}

// Emitters returns a copy of the emitter list.
func (b *Board) Emitters() []Emitter {
	out := make([]Emitter, len(b.emitters))
	copy(out, b.emitters)
	return out
}

// Targets returns a copy of the target points in declaration order.
func (b *Board) Targets() []Point {
	out := make([]Point, len(b.targets))
	copy(out, b.targets)
	return out
}

// TargetCount returns the number of declared targets.
func (b *Board) TargetCount() int { return len(b.targets) }

// HasTarget reports whether p is a declared target point.
// Complexity: O(1).
func (b *Board) HasTarget(p Point) bool {
	_, ok := b.targetSet[p]
	return ok
}

// At returns the fixed obstacle on cell c, if any.
// Complexity: O(1).
func (b *Board) At(c Cell) (BlockKind, bool) {
	k, ok := b.fixed[c]
	return k, ok
}

// IsOpenSlot reports whether c is an open slot (eligible for placement and
// not already fixed).
// Complexity: O(1).
func (b *Board) IsOpenSlot(c Cell) bool {
	_, ok := b.slotSet[c]
	return ok
}

// InLattice reports whether p lies within the board's doubled-lattice
// extent: 0 ≤ x ≤ 2·cols, 0 ≤ y ≤ 2·rows.
// Complexity: O(1).
func (b *Board) InLattice(p Point) bool {
	return p.X >= 0 && p.X <= 2*b.cols && p.Y >= 0 && p.Y <= 2*b.rows
}

// CellAt maps a lattice point to its owning cell when the point denotes an
// obstacle-interaction point (both components odd) inside the lattice
// extent. The second result is false otherwise.
// Complexity: O(1).
func (b *Board) CellAt(p Point) (Cell, bool) {
	if p.X%2 == 0 || p.Y%2 == 0 || !b.InLattice(p) {
		return Cell{}, false
	}
	return Cell{Row: (p.Y - 1) / 2, Col: (p.X - 1) / 2}, true
}

// Center returns the lattice point at the center of cell c: (2c+1, 2r+1).
// Complexity: O(1).
func (b *Board) Center(c Cell) Point {
	return Point{X: 2*c.Col + 1, Y: 2*c.Row + 1}
}

// Token returns the grid letter describing cell c in the static board:
// the fixed obstacle's letter, 'o' for an open slot, 'x' otherwise.
func (b *Board) Token(c Cell) byte {
	if k, ok := b.fixed[c]; ok {
		return k.Token()
	}
	if b.IsOpenSlot(c) {
		return 'o'
	}
	return 'x'
}

// Clone returns an independent deep copy of the Board. The copy is a flat
// value clone (maps of plain coordinates and small tags, no pointer graph),
// cheap enough to hand one per parallel solver worker.
// Complexity: O(R×C + emitters + targets).
func (b *Board) Clone() *Board {
	out := &Board{
		rows:      b.rows,
		cols:      b.cols,
		fixed:     make(map[Cell]BlockKind, len(b.fixed)),
		slots:     make([]Cell, len(b.slots)),
		slotSet:   make(map[Cell]struct{}, len(b.slotSet)),
		stock:     b.stock,
		emitters:  make([]Emitter, len(b.emitters)),
		targets:   make([]Point, len(b.targets)),
		targetSet: make(map[Point]struct{}, len(b.targetSet)),
	}
	for c, k := range b.fixed {
		out.fixed[c] = k
	}
	copy(out.slots, b.slots)
	for c := range b.slotSet {
		out.slotSet[c] = struct{}{}
	}
	copy(out.emitters, b.emitters)
	copy(out.targets, b.targets)
	for p := range b.targetSet {
		out.targetSet[p] = struct{}{}
	}

	return out
}

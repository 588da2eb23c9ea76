// Package board models one beam-routing puzzle: a rectangular grid of
// cells carrying fixed obstacles and open slots, an inventory of placeable
// obstacle kinds, beam emitters and target points, all sharing a doubled
// integer lattice.
//
// What:
//
//   - Board wraps grid dimensions, fixed obstacles, open slots, Stock,
//     Emitters and Targets, immutable once built.
//   - Doubled-lattice convention: cell (r,c) is centered at (2c+1, 2r+1);
//     odd/odd lattice points are obstacle centers, even components lie on
//     cell boundaries. Beams and obstacles share one integer coordinate
//     space with no fractional arithmetic.
//   - BlockKind is the closed {Reflect, Opaque, Refract} variant set.
//   - Placement and Stock are the solver's working state, kept outside the
//     Board: Placement maps slots to kinds, Stock travels by value.
//
// Why:
//
//   - The simulator needs O(1) geometric queries (CellAt, InLattice).
//   - The solver needs cheap per-worker copies (Clone is a flat value copy).
//   - Construction validates everything up front, so downstream code never
//     re-checks grid shape or token legality.
//
// Complexity:
//
//   - New / FromCells / Clone: O(R×C + emitters + targets).
//   - All queries: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownToken: grid token outside {o,x,A,B,C}.
//   - ErrSlotOverlap: open slot declared on a fixed cell.
//   - ErrCellRange: cell outside grid dimensions.
//   - ErrNegativeStock: negative inventory count.
//   - ErrBadDirection: emitter direction zero or non-unit.
//   - ErrBadKind: block kind outside the closed set.
package board

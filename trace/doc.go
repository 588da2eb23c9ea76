// Package trace is the puzzle's physics: it propagates every emitter's
// beam across the doubled lattice, applying obstacle-interaction rules,
// and reports which targets were struck.
//
// What:
//
//   - Run traces a board plus a tentative Placement and returns the hit
//     set (struck targets), an optional trajectory, and step counters.
//   - Obstacles behave per board.BlockKind: Reflect bounces the beam 90°,
//     Opaque absorbs it, Refract splits it (or bends it, see RefractMode).
//   - Two interaction conventions are supported and NOT numerically
//     equivalent: CenterInteraction (obstacles act at odd/odd cell
//     centers, exact target matching) and BoundaryInteraction (obstacles
//     act at even wall crossings of the entered cell, target matching
//     tolerates one lattice step).
//
// Why:
//
//   - The backtracking solver uses Run as its feasibility oracle, so the
//     simulator must be deterministic, allocation-light and strictly
//     bounded.
//   - Reflective or refractive arrangements can loop beams forever (two
//     facing reflectors); a per-emitter visited-state set prunes cycles
//     and a perimeter-derived step ceiling backstops the pruning.
//
// Complexity:
//
//   - Run: O(E × ceiling) time, O(ceiling) memory, E = number of emitters.
//     The ceiling is 8·(rows+cols)·10 under CenterInteraction and
//     max(64, 12·(rows+cols)) under BoundaryInteraction.
//
// Options:
//
//   - WithConvention: CenterInteraction (default) or BoundaryInteraction.
//   - WithRefractMode: RefractSplit (default) or RefractBend.
//   - WithTrajectory: record every visited lattice point (default on;
//     disable in hot search loops).
//
// Errors:
//
//   - ErrNilBoard: nil board pointer.
//   - ErrOptionViolation: unknown convention or refract mode.
//
// Determinism: two runs over the identical (board, placement) pair yield
// identical hit sets and trajectories; emitters are processed in board
// order and each explores breadth-first.
package trace

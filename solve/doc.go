// Package solve searches placement space: which obstacle goes into which
// open slot so that every target is struck by a beam.
//
// What:
//
//   - Run: single-threaded backtracking over heuristically ordered slots,
//     goal-testing with the trace package before every expansion, under a
//     wall-clock budget. Fixed kind preference per slot (Reflect, Refract,
//     Opaque), plus the always-legal empty choice.
//   - Parallel: N independent Run instances, one per seed, first success
//     wins, best partial otherwise.
//   - OrderSlots: the proximity heuristic with seeded window shuffling.
//
// Why:
//
//   - The simulator is the only feasibility oracle, so the search must
//     spend it carefully: memoization prunes re-reached states, the goal
//     test runs before expansion so solutions using few items are found
//     early, and the heuristic pushes promising slots forward.
//   - Different seeds explore the space in different orders; racing them
//     converts ordering luck into wall-clock speedup without any shared
//     state (each worker owns a board clone).
//
// Outcomes, not errors: exhaustion ("no solution exists") and time-out
// ("none found within budget, best partial attached") are normal results
// carried by Result.Outcome. Errors are reserved for malformed calls and
// the infeasible configuration (more inventory than open slots), which is
// rejected before any simulation.
//
// Complexity:
//
//   - Run: O(4^S) states worst case (three kinds plus empty per slot);
//     memoization keyed on (slot index, assignment prefix) collapses
//     transpositions, and stock-aware expansion skips exhausted kinds.
//   - Parallel: Run × workers, coordination O(seeds).
//
// Options:
//
//   - WithTimeLimit: wall-clock budget (default 180s; 0 = unlimited).
//   - WithSeed / WithSeeds: shuffle seed(s) (parallel default DefaultSeeds).
//   - WithAlpha / WithShuffleWindow: heuristic shape (defaults 1.5, 4).
//   - WithConvention / WithRefractMode: forwarded to the simulator.
//   - WithWorkers: pool size (default min(seeds, NumCPU-1)).
//   - WithLogger: slog sink for coarse progress events.
//
// Errors:
//
//   - ErrNilBoard: nil board pointer.
//   - ErrOptionViolation: invalid option value.
//   - ErrInfeasible: more inventory items than open slots; the returned
//     Result still carries the Infeasible outcome for reporting.
package solve

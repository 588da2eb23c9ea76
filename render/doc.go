// Package render writes solver reports: a human-readable text summary, a
// machine-readable JSON document and a PNG image of the board with its
// beam paths.
//
// What:
//
//   - Text: outcome, hit ratio, elapsed time, search statistics, the
//     board with the placement drawn in, placed blocks, missed targets.
//     ANSI color on terminals (mattn/go-isatty), plain elsewhere.
//   - JSON: the same facts in a stable schema whose input half
//     (board, available_blocks, lasers, target_points) round-trips
//     through bff.ParseJSON.
//   - PNG: cells on a gray grid, obstacles colored by kind, trajectory
//     dots, emitter and target markers colored by hit status.
//
// Why:
//
//   - Writers consume only the board, the solver result and an optional
//     trajectory (WithTrajectory); they never search or simulate. Every
//     non-success outcome still renders a full best-effort report.
//
// Options:
//
//   - WithName: labels the report.
//   - WithTrajectory: beam path for the JSON hit-point list and PNG dots.
//   - WithColor: ColorAuto (default), ColorAlways, ColorNever.
//   - WithScale: PNG cell edge in pixels (default 60).
//
// Errors:
//
//   - ErrNilBoard, ErrNilResult: missing inputs.
//   - ErrOptionViolation: invalid option value.
package render

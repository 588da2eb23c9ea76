// Package bff parses puzzle boards: the .bff text format and the JSON
// export schema, both producing a validated board.Board.
//
// What:
//
//   - Parse / ParseFile: the .bff text format, a GRID block of
//     single-character tokens followed by inventory counts, emitter and
//     target records, comments and blank lines.
//   - ParseJSON: the input half of the JSON document the render package
//     writes, read with tidwall/gjson path queries, so exported solutions
//     round-trip back into solvable boards.
//
// Why:
//
//   - Loading is the only place malformed input can enter the system, so
//     the contract is all-or-nothing: any unrecognized line, token or
//     record aborts the load with a wrapped sentinel and a line number.
//     Nothing downstream ever sees a partially parsed board.
//
// Format (text):
//
//	# comment
//	GRID START
//	o o x
//	A o o
//	GRID STOP
//	A 2
//	B: 1
//	C=3
//	L 2 3 1 -1
//	P 3 0
//
// Errors:
//
//   - ErrNoGrid: no GRID block, or an empty one.
//   - ErrUnknownToken: a grid token outside o, x, A, B, C.
//   - ErrBadRecord: malformed inventory, emitter or target record, or an
//     unrecognized directive.
//   - board.ErrNonRectangular, board.ErrNegativeStock,
//     board.ErrBadDirection, board.ErrCellRange: geometry and range
//     violations surfaced by board construction.
package bff

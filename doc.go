// Package lazork solves grid-based beam-routing puzzles: place a finite
// inventory of obstacles on a board so that every target point is
// traversed by a beam.
//
// 🚀 What is lazork?
//
//	A puzzle engine built around a doubled-coordinate lattice:
//		• Board model: grid cells, fixed obstacles, open slots, emitters, targets
//		• Beam simulator: two interaction conventions, split or bend refraction
//		• Backtracking solver: slot-ordering heuristic, deadline, best partial
//		• Parallel meta-solver: seeded workers racing to the first solution
//		• Loaders & writers: .bff boards, JSON exports, ASCII and PNG reports
//
// ✨ Why lazork?
//
//   - Outcomes, not errors: exhaustion and time-outs are results, not failures
//   - Deterministic: identical board and seed give an identical search
//   - Context-aware: every search node honors cancellation and deadlines
//
// Everything is organized under six packages:
//
//	board/  — grid model, obstacle kinds, inventory, lattice geometry
//	trace/  — the beam simulator (the puzzle's physics)
//	solve/  — backtracking search plus the parallel seed racer
//	bff/    — .bff text loader and JSON board reader
//	render/ — ASCII, JSON and PNG report writers
//	cmd/    — the lazork command-line front end
//
// Quick ASCII example:
//
//	o o A
//	o x o      'o' open slot, 'x' blocked, 'A' fixed mirror
//	B o o      'B' fixed opaque block
//
//	Cell (r,c) has its center at lattice point (2c+1, 2r+1); even
//	coordinates are cell boundaries.
//
//	go get github.com/lazork/lazork
package lazork

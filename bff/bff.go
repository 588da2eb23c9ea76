// Package bff loads puzzle boards from the .bff text format and from the
// JSON export schema.
package bff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lazork/lazork/board"
)

// Sentinel errors for malformed board files. Geometry and range violations
// surface as the board package's own sentinels.
var (
	// ErrNoGrid is returned when no GRID block is present or it holds no rows.
	ErrNoGrid = errors.New("bff: no GRID block found")

	// ErrUnknownToken is returned for a grid token outside o, x, A, B, C.
	ErrUnknownToken = errors.New("bff: unknown grid token")

	// ErrBadRecord is returned for a malformed stock, emitter or target
	// record, or an unrecognized directive.
	ErrBadRecord = errors.New("bff: malformed record")
)

// Parse reads the .bff text format:
//
//	# comment lines and blank lines are ignored
//	GRID START ... GRID STOP delimit the grid, one row per line,
//	  whitespace-separated tokens: o open slot, x blocked,
//	  A fixed reflect, B fixed opaque, C fixed refract
//	A 2 | B: 1 | C=3   inventory counts, colon and equals optional
//	L x y dx dy        emitter at lattice point (x,y), unit direction
//	P x y              target lattice point
//
// Directive keywords are case-insensitive; grid tokens are not. Any line
// that matches no form is an error: a board is accepted whole or not at
// all. Errors wrap ErrNoGrid, ErrUnknownToken or ErrBadRecord with the
// offending line number, or the board package sentinels for geometry,
// stock and direction violations.
func Parse(r io.Reader) (*board.Board, error) {
	var (
		rows     []string
		inGrid   bool
		sawGrid  bool
		stock    board.Stock
		emitters []board.Emitter
		targets  []board.Point
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		up := strings.ToUpper(ln)
		switch {
		case strings.HasPrefix(up, "GRID START"):
			inGrid, sawGrid = true, true
		case strings.HasPrefix(up, "GRID STOP"):
			inGrid = false
		case inGrid:
			row, err := parseRow(ln)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			rows = append(rows, row)
		default:
			if err := parseRecord(ln, &stock, &emitters, &targets); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bff: read: %w", err)
	}
	if !sawGrid || len(rows) == 0 {
		return nil, ErrNoGrid
	}

	return board.New(rows, stock, emitters, targets)
}

// ParseFile opens and parses a .bff board file.
func ParseFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// parseRow packs one whitespace-separated grid line into a compact token
// string. Every token must be a single known character.
func parseRow(ln string) (string, error) {
	var sb strings.Builder
	for _, tok := range strings.Fields(ln) {
		if len(tok) != 1 || !strings.ContainsRune("oxABC", rune(tok[0])) {
			return "", fmt.Errorf("%w: %q", ErrUnknownToken, tok)
		}
		sb.WriteByte(tok[0])
	}
	return sb.String(), nil
}

// parseRecord dispatches one non-grid line: an inventory count, an emitter
// or a target. A repeated inventory letter overwrites the earlier count.
func parseRecord(ln string, stock *board.Stock, emitters *[]board.Emitter, targets *[]board.Point) error {
	// 1. Inventory lines are keyed by their first byte: "A 2", "B: 1", "C=3".
	first := ln[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	if kind, ok := board.KindForToken(first); ok {
		rest := strings.TrimSpace(ln[1:])
		if rest != "" && (rest[0] == ':' || rest[0] == '=') {
			rest = strings.TrimSpace(rest[1:])
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("%w: inventory line %q", ErrBadRecord, ln)
		}
		stock[kind] = n
		return nil
	}

	// 2. Emitter and target records.
	fields := strings.Fields(ln)
	switch strings.ToUpper(fields[0]) {
	case "L":
		nums, err := parseInts(fields[1:], 4)
		if err != nil {
			return fmt.Errorf("%w: emitter line %q", ErrBadRecord, ln)
		}
		*emitters = append(*emitters, board.Emitter{
			Pos: board.Point{X: nums[0], Y: nums[1]},
			Dir: board.Delta{DX: nums[2], DY: nums[3]},
		})
	case "P":
		nums, err := parseInts(fields[1:], 2)
		if err != nil {
			return fmt.Errorf("%w: target line %q", ErrBadRecord, ln)
		}
		*targets = append(*targets, board.Point{X: nums[0], Y: nums[1]})
	default:
		return fmt.Errorf("%w: unrecognized directive %q", ErrBadRecord, fields[0])
	}
	return nil
}

// parseInts converts exactly want fields to integers.
func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("want %d fields, got %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

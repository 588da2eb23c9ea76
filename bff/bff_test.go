package bff_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lazork/lazork/bff"
	"github.com/lazork/lazork/board"
)

//----------------------------------------------------------------------------//
// Text Format Tests
//----------------------------------------------------------------------------//

const sample = `
# tiny two-row board
GRID START
o o x
A o o
GRID STOP

A 2
B: 1
C=3
L 2 3 1 -1
P 3 0
P 0 1
`

// TestParse_Sample verifies every section of a well-formed file lands in
// the board.
func TestParse_Sample(t *testing.T) {
	b, err := bff.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Fatalf("dimensions = %d×%d; want 2×3", b.Rows(), b.Cols())
	}
	if got, want := b.Stock(), (board.Stock{2, 1, 3}); got != want {
		t.Errorf("stock = %v; want %v", got, want)
	}
	if kind, fixed := b.At(board.Cell{Row: 1, Col: 0}); !fixed || kind != board.Reflect {
		t.Errorf("cell (1,0) = %v fixed=%v; want fixed Reflect", kind, fixed)
	}
	if !b.IsOpenSlot(board.Cell{Row: 0, Col: 0}) {
		t.Error("cell (0,0) must be an open slot")
	}
	if b.IsOpenSlot(board.Cell{Row: 0, Col: 2}) {
		t.Error("cell (0,2) is blocked, not a slot")
	}
	emitters := b.Emitters()
	if len(emitters) != 1 {
		t.Fatalf("emitters = %d; want 1", len(emitters))
	}
	want := board.Emitter{Pos: board.Point{X: 2, Y: 3}, Dir: board.Delta{DX: 1, DY: -1}}
	if emitters[0] != want {
		t.Errorf("emitter = %+v; want %+v", emitters[0], want)
	}
	if b.TargetCount() != 2 || !b.HasTarget(board.Point{X: 3, Y: 0}) {
		t.Errorf("targets = %v; want (3,0) and (0,1)", b.Targets())
	}
}

// TestParse_DirectiveCase: keywords are case-insensitive, grid tokens are not.
func TestParse_DirectiveCase(t *testing.T) {
	b, err := bff.Parse(strings.NewReader(
		"grid start\no\ngrid stop\na 1\nl 0 1 1 0\np 2 1\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := b.Stock().Count(board.Reflect); got != 1 {
		t.Errorf("reflect stock = %d; want 1", got)
	}
	if len(b.Emitters()) != 1 || b.TargetCount() != 1 {
		t.Errorf("emitters/targets = %d/%d; want 1/1", len(b.Emitters()), b.TargetCount())
	}

	_, err = bff.Parse(strings.NewReader("GRID START\nO\nGRID STOP\n"))
	if !errors.Is(err, bff.ErrUnknownToken) {
		t.Errorf("uppercase 'O' token error = %v; want ErrUnknownToken", err)
	}
}

// TestParse_RepeatedStockOverwrites: a later count replaces an earlier one.
func TestParse_RepeatedStockOverwrites(t *testing.T) {
	b, err := bff.Parse(strings.NewReader("GRID START\no o\nGRID STOP\nA 5\nA 1\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := b.Stock().Count(board.Reflect); got != 1 {
		t.Errorf("reflect stock = %d; want 1", got)
	}
}

// TestParse_Errors walks the malformed-input taxonomy: every bad line
// aborts the whole load with the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"NoGrid", "A 2\nL 0 1 1 0\n", bff.ErrNoGrid},
		{"EmptyGridBlock", "GRID START\nGRID STOP\n", bff.ErrNoGrid},
		{"UnknownToken", "GRID START\no q\nGRID STOP\n", bff.ErrUnknownToken},
		{"GluedTokens", "GRID START\noo\nGRID STOP\n", bff.ErrUnknownToken},
		{"RaggedRows", "GRID START\no o\no\nGRID STOP\n", board.ErrNonRectangular},
		{"EmitterShort", "GRID START\no\nGRID STOP\nL 1 2 1\n", bff.ErrBadRecord},
		{"EmitterLong", "GRID START\no\nGRID STOP\nL 1 2 1 0 9\n", bff.ErrBadRecord},
		{"EmitterNonInt", "GRID START\no\nGRID STOP\nL 1 2 one 0\n", bff.ErrBadRecord},
		{"EmitterWildDir", "GRID START\no\nGRID STOP\nL 1 2 2 0\n", board.ErrBadDirection},
		{"TargetShort", "GRID START\no\nGRID STOP\nP 4\n", bff.ErrBadRecord},
		{"StockNonInt", "GRID START\no\nGRID STOP\nA two\n", bff.ErrBadRecord},
		{"StockBare", "GRID START\no\nGRID STOP\nB\n", bff.ErrBadRecord},
		{"StockNegative", "GRID START\no\nGRID STOP\nC -2\n", board.ErrNegativeStock},
		{"UnknownDirective", "GRID START\no\nGRID STOP\nQ 1 2\n", bff.ErrBadRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bff.Parse(strings.NewReader(tc.in))
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestParseFile round-trips through the filesystem and reports open errors.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.bff")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	b, err := bff.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Errorf("dimensions = %d×%d; want 2×3", b.Rows(), b.Cols())
	}

	if _, err := bff.ParseFile(filepath.Join(t.TempDir(), "absent.bff")); err == nil {
		t.Error("ParseFile on a missing file must fail")
	}
}

//----------------------------------------------------------------------------//
// JSON Format Tests
//----------------------------------------------------------------------------//

const sampleJSON = `{
  "board": {"width": 3, "height": 2, "grid": [["o", "o", "x"], ["A", "o", "o"]]},
  "available_blocks": {"A": 2, "C": 3},
  "lasers": [{"start": [2, 7], "direction": [1, -1]}],
  "target_points": [[3, 0], [0, 1]]
}`

// TestParseJSON_Sample reads the exporter schema back into a board.
func TestParseJSON_Sample(t *testing.T) {
	b, err := bff.ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Fatalf("dimensions = %d×%d; want 2×3", b.Rows(), b.Cols())
	}
	if got, want := b.Stock(), (board.Stock{2, 0, 3}); got != want {
		t.Errorf("stock = %v; want %v", got, want)
	}
	if len(b.Emitters()) != 1 || b.TargetCount() != 2 {
		t.Errorf("emitters/targets = %d/%d; want 1/2", len(b.Emitters()), b.TargetCount())
	}
}

// TestParseJSON_CompactRows accepts rows written as plain strings.
func TestParseJSON_CompactRows(t *testing.T) {
	b, err := bff.ParseJSON([]byte(`{"board": {"grid": ["oox", "Aoo"]}}`))
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Errorf("dimensions = %d×%d; want 2×3", b.Rows(), b.Cols())
	}
}

// TestParseJSON_Errors covers the JSON-side taxonomy.
func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Invalid", `{"board": `, bff.ErrBadRecord},
		{"NoGrid", `{"available_blocks": {"A": 1}}`, bff.ErrNoGrid},
		{"GridNotArray", `{"board": {"grid": "oox"}}`, bff.ErrNoGrid},
		{"EmptyGrid", `{"board": {"grid": []}}`, bff.ErrNoGrid},
		{"WideToken", `{"board": {"grid": [["oo"]]}}`, bff.ErrUnknownToken},
		{"BadLaser", `{"board": {"grid": ["o"]}, "lasers": [{"start": [1], "direction": [1, 0]}]}`, bff.ErrBadRecord},
		{"BadTarget", `{"board": {"grid": ["o"]}, "target_points": [[1]]}`, bff.ErrBadRecord},
		{"WildDirection", `{"board": {"grid": ["o"]}, "lasers": [{"start": [0, 1], "direction": [3, 0]}]}`, board.ErrBadDirection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bff.ParseJSON([]byte(tc.in))
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseJSON error = %v; want %v", err, tc.err)
			}
		})
	}
}

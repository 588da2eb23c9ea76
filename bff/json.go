package bff

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/lazork/lazork/board"
)

// ParseJSON reads a board from the JSON export schema (the input half of
// the render package's JSON document):
//
//	board.grid        rows of tokens, each row an array of single-character
//	                  strings or one compact string ("oxA")
//	available_blocks  {"A": n, "B": n, "C": n}, missing letters mean zero
//	lasers            [{"start": [x, y], "direction": [dx, dy]}, ...]
//	target_points     [[x, y], ...]
//
// Unknown grid tokens, missing grids and malformed records wrap the same
// sentinels as Parse.
func ParseJSON(data []byte) (*board.Board, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON document", ErrBadRecord)
	}
	root := gjson.ParseBytes(data)

	rows, err := jsonGrid(root.Get("board.grid"))
	if err != nil {
		return nil, err
	}

	var stock board.Stock
	for _, letter := range []string{"A", "B", "C"} {
		v := root.Get("available_blocks." + letter)
		if !v.Exists() {
			continue
		}
		kind, _ := board.KindForToken(letter[0])
		stock[kind] = int(v.Int())
	}

	emitters, err := jsonEmitters(root.Get("lasers"))
	if err != nil {
		return nil, err
	}
	targets, err := jsonTargets(root.Get("target_points"))
	if err != nil {
		return nil, err
	}

	return board.New(rows, stock, emitters, targets)
}

// jsonGrid packs board.grid rows into compact token strings.
func jsonGrid(grid gjson.Result) ([]string, error) {
	if !grid.Exists() || !grid.IsArray() {
		return nil, ErrNoGrid
	}
	var rows []string
	var rowErr error
	grid.ForEach(func(_, row gjson.Result) bool {
		if !row.IsArray() {
			rows = append(rows, row.String())
			return true
		}
		var sb []byte
		row.ForEach(func(_, tok gjson.Result) bool {
			t := tok.String()
			if len(t) != 1 {
				rowErr = fmt.Errorf("%w: %q", ErrUnknownToken, t)
				return false
			}
			sb = append(sb, t[0])
			return true
		})
		if rowErr != nil {
			return false
		}
		rows = append(rows, string(sb))
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if len(rows) == 0 {
		return nil, ErrNoGrid
	}
	return rows, nil
}

// jsonEmitters reads laser records with two-component start and direction.
func jsonEmitters(lasers gjson.Result) ([]board.Emitter, error) {
	var out []board.Emitter
	var recErr error
	lasers.ForEach(func(_, v gjson.Result) bool {
		start := v.Get("start").Array()
		dir := v.Get("direction").Array()
		if len(start) != 2 || len(dir) != 2 {
			recErr = fmt.Errorf("%w: laser %s", ErrBadRecord, v.Raw)
			return false
		}
		out = append(out, board.Emitter{
			Pos: board.Point{X: int(start[0].Int()), Y: int(start[1].Int())},
			Dir: board.Delta{DX: int(dir[0].Int()), DY: int(dir[1].Int())},
		})
		return true
	})
	return out, recErr
}

// jsonTargets reads [x, y] pairs.
func jsonTargets(points gjson.Result) ([]board.Point, error) {
	var out []board.Point
	var recErr error
	points.ForEach(func(_, v gjson.Result) bool {
		pair := v.Array()
		if len(pair) != 2 {
			recErr = fmt.Errorf("%w: target %s", ErrBadRecord, v.Raw)
			return false
		}
		out = append(out, board.Point{X: int(pair[0].Int()), Y: int(pair[1].Int())})
		return true
	})
	return out, recErr
}

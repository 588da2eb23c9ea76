package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/solve"
)

// jsonDoc is the machine-readable report. The input half (board,
// available_blocks, lasers, target_points) round-trips through
// bff.ParseJSON; grid_coords pairs are row,col and lattice_coords are the
// doubled-lattice x,y of the cell center.
type jsonDoc struct {
	PuzzleName string         `json:"puzzle_name,omitempty"`
	Board      jsonBoard      `json:"board"`
	Available  map[string]int `json:"available_blocks"`
	Lasers     []jsonLaser    `json:"lasers"`
	Targets    [][2]int       `json:"target_points"`
	Solution   jsonSolution   `json:"solution"`
	Verify     jsonVerify     `json:"verification"`
	Perf       jsonPerf       `json:"performance"`
}

type jsonBoard struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Grid   [][]string `json:"grid"`
}

type jsonLaser struct {
	Start     [2]int `json:"start"`
	Direction [2]int `json:"direction"`
}

type jsonSolution struct {
	BlocksPlaced  map[string]string `json:"blocks_placed"`
	NumBlocks     int               `json:"num_blocks"`
	GridPositions []jsonPosition    `json:"grid_positions"`
}

type jsonPosition struct {
	BlockType     string `json:"block_type"`
	LatticeCoords [2]int `json:"lattice_coords"`
	GridCoords    [2]int `json:"grid_coords"`
}

type jsonVerify struct {
	TargetsHit   [][2]int `json:"targets_hit"`
	AllHitPoints [][2]int `json:"all_hit_points"`
	IsSolved     bool     `json:"is_solved"`
}

type jsonPerf struct {
	SolveTimeSeconds float64 `json:"solve_time_seconds"`
}

// JSON writes the structured report: the board as parsed, the placement
// keyed by cell-center lattice coordinates, the verification section
// (targets struck, every lattice point the beams touched when a trajectory
// is supplied via WithTrajectory) and solve time. Output is indented and
// deterministic: object keys and point lists are sorted.
func JSON(w io.Writer, b *board.Board, res *solve.Result, opts ...Option) error {
	if b == nil {
		return ErrNilBoard
	}
	if res == nil {
		return ErrNilResult
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	doc := jsonDoc{
		PuzzleName: o.Name,
		Board: jsonBoard{
			Width:  b.Cols(),
			Height: b.Rows(),
			Grid:   gridTokens(b),
		},
		Available: map[string]int{
			"A": b.Stock().Count(board.Reflect),
			"B": b.Stock().Count(board.Opaque),
			"C": b.Stock().Count(board.Refract),
		},
		Lasers:  make([]jsonLaser, 0, len(b.Emitters())),
		Targets: sortedPairs(b.Targets()),
		Solution: jsonSolution{
			BlocksPlaced:  make(map[string]string, len(res.Placement)),
			NumBlocks:     len(res.Placement),
			GridPositions: make([]jsonPosition, 0, len(res.Placement)),
		},
		Verify: jsonVerify{
			TargetsHit:   make([][2]int, 0, len(res.Hits)),
			AllHitPoints: touchedPoints(o.Trajectory),
			IsSolved:     res.Solved(),
		},
		Perf: jsonPerf{SolveTimeSeconds: math.Round(res.Elapsed.Seconds()*1e4) / 1e4},
	}

	for _, e := range b.Emitters() {
		doc.Lasers = append(doc.Lasers, jsonLaser{
			Start:     [2]int{e.Pos.X, e.Pos.Y},
			Direction: [2]int{e.Dir.DX, e.Dir.DY},
		})
	}
	for _, c := range sortedCells(res.Placement) {
		k := res.Placement[c]
		center := b.Center(c)
		doc.Solution.BlocksPlaced[fmt.Sprintf("%d,%d", center.X, center.Y)] = string(k.Token())
		doc.Solution.GridPositions = append(doc.Solution.GridPositions, jsonPosition{
			BlockType:     string(k.Token()),
			LatticeCoords: [2]int{center.X, center.Y},
			GridCoords:    [2]int{c.Row, c.Col},
		})
	}
	hit := make([]board.Point, 0, len(res.Hits))
	for p := range res.Hits {
		hit = append(hit, p)
	}
	doc.Verify.TargetsHit = sortedPairs(hit)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// gridTokens renders the static board as rows of single-character tokens.
func gridTokens(b *board.Board) [][]string {
	grid := make([][]string, b.Rows())
	for r := range grid {
		row := make([]string, b.Cols())
		for c := range row {
			row[c] = string(b.Token(board.Cell{Row: r, Col: c}))
		}
		grid[r] = row
	}
	return grid
}

// sortedPairs converts points to [x, y] pairs ordered by x then y.
func sortedPairs(points []board.Point) [][2]int {
	sorted := append([]board.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	out := make([][2]int, len(sorted))
	for i, p := range sorted {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}

// touchedPoints deduplicates a trajectory into sorted [x, y] pairs.
func touchedPoints(path []board.Point) [][2]int {
	seen := make(map[board.Point]struct{}, len(path))
	uniq := make([]board.Point, 0, len(path))
	for _, p := range path {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	return sortedPairs(uniq)
}

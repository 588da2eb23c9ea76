package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/solve"
)

// ANSI escapes used by the text writer.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// Text writes the human-readable report: outcome, hit ratio, elapsed time,
// search statistics, the board with the winning placement drawn in (fixed
// obstacles uppercase, placed lowercase, 'o' open, 'x' blocked), the placed
// blocks and any missed targets. ANSI color is applied when the writer is
// a terminal, always or never per WithColor. Every non-success outcome
// still renders the full board and whatever targets were struck.
func Text(w io.Writer, b *board.Board, res *solve.Result, opts ...Option) error {
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
	color := o.Color == ColorAlways || (o.Color == ColorAuto && isTerminal(w))
	paint := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	var sb strings.Builder
	if o.Name != "" {
		fmt.Fprintf(&sb, "puzzle: %s\n", o.Name)
	}
	fmt.Fprintf(&sb, "outcome: %s\n", paint(res.Outcome.String(), outcomeColor(res.Outcome)))
	ratio := fmt.Sprintf("%d/%d", res.HitCount, res.TargetCount)
	if res.TargetCount > 0 && res.HitCount == res.TargetCount {
		ratio = paint(ratio, ansiGreen)
	}
	fmt.Fprintf(&sb, "targets: %s\n", ratio)
	fmt.Fprintf(&sb, "elapsed: %s\n", res.Elapsed)
	fmt.Fprintf(&sb, "search: seed %d workers %d nodes %d sims %d\n",
		res.Seed, res.Workers, res.Nodes, res.SimCalls)

	sb.WriteString("board:\n")
	writeGrid(&sb, b, res.Placement)

	if len(res.Placement) > 0 {
		sb.WriteString("placed:\n")
		for _, c := range sortedCells(res.Placement) {
			k := res.Placement[c]
			fmt.Fprintf(&sb, "  %c %s (%d,%d)\n", lowerToken(k), k, c.Row, c.Col)
		}
	}
	if missed := missedTargets(b, res); len(missed) > 0 {
		sb.WriteString("missed:\n")
		for _, p := range missed {
			fmt.Fprintf(&sb, "%s\n", paint(fmt.Sprintf("  (%d,%d)", p.X, p.Y), ansiRed))
		}
	}

	_, err = io.WriteString(w, sb.String())
	return err
}

// writeGrid renders one row per line, tokens space-separated, placed
// blocks as lowercase letters.
func writeGrid(sb *strings.Builder, b *board.Board, placed board.Placement) {
	for r := 0; r < b.Rows(); r++ {
		sb.WriteString(" ")
		for c := 0; c < b.Cols(); c++ {
			cell := board.Cell{Row: r, Col: c}
			tok := b.Token(cell)
			if k, ok := placed[cell]; ok {
				tok = lowerToken(k)
			}
			sb.WriteByte(' ')
			sb.WriteByte(tok)
		}
		sb.WriteByte('\n')
	}
}

// lowerToken is the placed-block letter: the kind's token, lowercased.
func lowerToken(k board.BlockKind) byte {
	return k.Token() + ('a' - 'A')
}

// sortedCells returns placement keys in row-major order.
func sortedCells(p board.Placement) []board.Cell {
	cells := make([]board.Cell, 0, len(p))
	for c := range p {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// missedTargets lists declared targets absent from the hit set, ordered by
// lattice coordinates.
func missedTargets(b *board.Board, res *solve.Result) []board.Point {
	var out []board.Point
	for _, t := range b.Targets() {
		if _, ok := res.Hits[t]; !ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// outcomeColor maps an outcome to its status color.
func outcomeColor(o solve.Outcome) string {
	switch o {
	case solve.Solved:
		return ansiGreen
	case solve.TimedOut:
		return ansiYellow
	default:
		return ansiRed
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lazork/lazork/bff"
	"github.com/lazork/lazork/trace"
)

func runBatch(cmd *cobra.Command, args []string) error {
	conv, err := parseConvention(flagCollision)
	if err != nil {
		return err
	}
	mode, err := parseRefract(flagRefract)
	if err != nil {
		return err
	}

	dir := args[0]
	boards, err := collectBoards(dir)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		return fmt.Errorf("no .bff boards under %s", dir)
	}

	runID := uuid.NewString()[:8]
	slog.Info("batch starting", "run_id", runID, "boards", len(boards),
		"collision", flagCollision, "refract", flagRefract, "solver", flagSolver)

	rows := make([][]string, 0, len(boards))
	solved := 0
	for _, path := range boards {
		row, ok := solveOne(cmd.Context(), path, conv, mode)
		if ok {
			solved++
		}
		rows = append(rows, row)
	}

	out := csvPath(runID)
	if err := writeCSV(out, rows); err != nil {
		return err
	}
	fmt.Printf("%d/%d solved, summary: %s\n", solved, len(boards), out)
	return nil
}

// solveOne loads and solves a single board, printing one summary line and
// returning its CSV row. Per-board failures become rows, not errors, so
// one broken file cannot sink the batch.
func solveOne(ctx context.Context, path string, conv trace.Convention, mode trace.RefractMode) ([]string, bool) {
	name := boardName(path)
	b, err := bff.ParseFile(path)
	if err != nil {
		slog.Error("load failed", "board", name, "error", err)
		return []string{name, "invalid", "", "", "", "", "", ""}, false
	}

	res, err := solveBoard(ctx, b, conv, mode)
	if res == nil {
		slog.Error("solve failed", "board", name, "error", err)
		return []string{name, "error", "", "", "", "", "", ""}, false
	}

	fmt.Printf("%-24s %-10s %d/%d targets in %s\n",
		name, res.Outcome, res.HitCount, res.TargetCount,
		res.Elapsed.Round(time.Millisecond))

	return []string{
		name,
		res.Outcome.String(),
		strconv.Itoa(res.HitCount),
		strconv.Itoa(res.TargetCount),
		strconv.FormatInt(res.Nodes, 10),
		strconv.FormatInt(res.SimCalls, 10),
		strconv.FormatInt(res.Seed, 10),
		res.Elapsed.Round(time.Microsecond).String(),
	}, res.Solved()
}

// collectBoards walks dir for .bff files, lexically ordered.
func collectBoards(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".bff" {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

// csvPath resolves the summary destination: --out may be empty (current
// directory), an existing directory, or a full file path.
func csvPath(runID string) string {
	name := fmt.Sprintf("batch_%s.csv", runID)
	if flagOut == "" {
		return name
	}
	info, err := os.Stat(flagOut)
	if err == nil && info.IsDir() {
		return filepath.Join(flagOut, name)
	}
	return flagOut
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	header := []string{"board", "outcome", "hits", "targets", "nodes", "sims", "seed", "elapsed"}
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

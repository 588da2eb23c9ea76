package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazork/lazork/bff"
	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/render"
	"github.com/lazork/lazork/solve"
	"github.com/lazork/lazork/trace"
)

func runSolve(cmd *cobra.Command, args []string) error {
	conv, err := parseConvention(flagCollision)
	if err != nil {
		return err
	}
	mode, err := parseRefract(flagRefract)
	if err != nil {
		return err
	}

	path := args[0]
	b, err := bff.ParseFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	res, solveErr := solveBoard(cmd.Context(), b, conv, mode)
	if res == nil {
		return solveErr
	}

	if err := report(b, res, boardName(path), conv, mode); err != nil {
		return err
	}
	// Infeasible configurations render a report above, then fail the
	// command. Exhaustion and time-outs are ordinary outcomes.
	return solveErr
}

// solveBoard dispatches to the selected search strategy.
func solveBoard(ctx context.Context, b *board.Board, conv trace.Convention, mode trace.RefractMode) (*solve.Result, error) {
	opts := []solve.Option{
		solve.WithTimeLimit(flagTimeLimit),
		solve.WithAlpha(flagAlpha),
		solve.WithConvention(conv),
		solve.WithRefractMode(mode),
		solve.WithLogger(slog.Default()),
	}
	switch flagSolver {
	case "single":
		return solve.Run(ctx, b, append(opts, solve.WithSeed(flagSeed))...)
	case "parallel":
		return solve.Parallel(ctx, b, append(opts,
			solve.WithSeeds(flagSeeds), solve.WithWorkers(flagWorkers))...)
	default:
		return nil, fmt.Errorf("unknown solver %q (want single or parallel)", flagSolver)
	}
}

func parseConvention(s string) (trace.Convention, error) {
	switch s {
	case "center":
		return trace.CenterInteraction, nil
	case "boundary":
		return trace.BoundaryInteraction, nil
	default:
		return 0, fmt.Errorf("unknown collision convention %q (want center or boundary)", s)
	}
}

func parseRefract(s string) (trace.RefractMode, error) {
	switch s {
	case "split":
		return trace.RefractSplit, nil
	case "bend":
		return trace.RefractBend, nil
	default:
		return 0, fmt.Errorf("unknown refract mode %q (want split or bend)", s)
	}
}

// report writes the text or JSON document to stdout and any requested
// artifacts under --out.
func report(b *board.Board, res *solve.Result, name string, conv trace.Convention, mode trace.RefractMode) error {
	traj := winningTrajectory(b, res, conv, mode)

	if flagJSON {
		if err := render.JSON(os.Stdout, b, res,
			render.WithName(name), render.WithTrajectory(traj)); err != nil {
			return err
		}
	} else if !flagQuiet {
		if err := render.Text(os.Stdout, b, res, render.WithName(name)); err != nil {
			return err
		}
	}

	if flagPNG != "" {
		path := artifactPath(flagPNG)
		if err := writePNG(path, b, res, traj); err != nil {
			return err
		}
		slog.Info("image written", "path", path)
	}
	return nil
}

// winningTrajectory replays the returned placement with recording
// enabled. Solver results carry only the hit set; the report wants the
// full beam path.
func winningTrajectory(b *board.Board, res *solve.Result, conv trace.Convention, mode trace.RefractMode) []board.Point {
	if res.Placement == nil {
		return nil
	}
	tr, err := trace.Run(b, res.Placement,
		trace.WithConvention(conv), trace.WithRefractMode(mode))
	if err != nil {
		slog.Warn("replay failed", "error", err)
		return nil
	}
	return tr.Trajectory
}

func writePNG(path string, b *board.Board, res *solve.Result, traj []board.Point) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := []render.Option{render.WithTrajectory(traj)}
	if pngScale > 0 {
		opts = append(opts, render.WithScale(pngScale))
	}
	if err := render.PNG(f, b, res, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// artifactPath resolves a relative artifact name under --out.
func artifactPath(name string) string {
	if flagOut == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(flagOut, name)
}

// boardName is the puzzle name: the file base without its extension.
func boardName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

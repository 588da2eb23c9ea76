package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazork/lazork/solve"
)

// Build metadata, overridden with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

// --- Global Command Variables ---
var (
	cfgPath     string
	flagQuiet   bool
	flagVerbose bool

	flagCollision string
	flagRefract   string
	flagSolver    string
	flagTimeLimit time.Duration
	flagSeed      int64
	flagSeeds     []int64
	flagWorkers   int
	flagAlpha     float64
	flagOut       string
	flagJSON      bool
	flagPNG       string

	// pngScale has no flag; it is set from the config file only.
	pngScale int

	rootCmd = &cobra.Command{
		Use:   "lazork",
		Short: "A beam-routing puzzle solver for .bff board files",
		Long: `lazork reads a .bff board file, searches for an obstacle placement
that routes a beam through every target, and reports the result as
text, JSON or PNG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve [board.bff]",
		Short: "Solve one board and report the placement",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	batchCmd = &cobra.Command{
		Use:   "batch [dir]",
		Short: "Solve every .bff board under a directory and write a CSV summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch, // Defined in cmd_batch.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("lazork %s (%s)\n", version, commit)
		},
	}
)

// addSearchFlags registers the flags shared by solve and batch. The same
// variables back both commands; only one command runs per process.
func addSearchFlags(cmd *cobra.Command) {
	def := solve.DefaultSolveOptions()
	cmd.Flags().StringVar(&flagCollision, "collision", "center",
		"Interaction convention: center or boundary")
	cmd.Flags().StringVar(&flagRefract, "refract", "split",
		"Refraction semantics: split or bend")
	cmd.Flags().StringVar(&flagSolver, "solver", "parallel",
		"Search strategy: single or parallel")
	cmd.Flags().DurationVar(&flagTimeLimit, "time-limit", def.TimeLimit,
		"Wall-clock budget per board, 0 disables the deadline")
	cmd.Flags().Int64Var(&flagSeed, "seed", def.Seed,
		"Slot-ordering seed for the single solver")
	cmd.Flags().Int64SliceVar(&flagSeeds, "seeds", nil,
		"Seed set for the parallel solver (default a fixed 12-seed set)")
	cmd.Flags().IntVar(&flagWorkers, "workers", def.Workers,
		"Parallel worker cap, 0 derives the count from available CPUs")
	cmd.Flags().Float64Var(&flagAlpha, "alpha", def.Alpha,
		"Target-proximity weight of the slot ordering")
	cmd.Flags().StringVar(&flagOut, "out", "",
		"Directory (or file, for batch) generated files are placed under")
}

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"YAML file with defaults for the flags below")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"Suppress the text report, log errors only")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Log search progress")

	rootCmd.AddCommand(solveCmd)
	addSearchFlags(solveCmd)
	solveCmd.Flags().BoolVar(&flagJSON, "json", false,
		"Emit the JSON document instead of the text report")
	solveCmd.Flags().StringVar(&flagPNG, "png", "",
		"Write a PNG image of the board to this file")

	rootCmd.AddCommand(batchCmd)
	addSearchFlags(batchCmd)

	rootCmd.AddCommand(versionCmd)
}

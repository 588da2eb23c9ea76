package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var config Config

func main() {
	// SIGINT/SIGTERM cancel the context; the solver returns its best
	// partial result and the report is still written.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lazork:", err)
		os.Exit(1)
	}
}

// setup loads the optional config file and installs the process logger.
// It runs before every command via PersistentPreRunE.
func setup(cmd *cobra.Command) error {
	if cfgPath != "" {
		if err := loadConfig(cfgPath); err != nil {
			return err
		}
		if err := applyConfig(cmd); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	switch {
	case flagQuiet:
		level = slog.LevelError
	case flagVerbose:
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

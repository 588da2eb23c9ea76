package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config carries flag defaults loaded from --config. Zero values mean
// "not set"; explicit command-line flags always win over file values.
type Config struct {
	Collision string  `yaml:"collision"`
	Refract   string  `yaml:"refract"`
	Solver    string  `yaml:"solver"`
	TimeLimit string  `yaml:"time_limit"`
	Seed      int64   `yaml:"seed"`
	Seeds     []int64 `yaml:"seeds"`
	Workers   int     `yaml:"workers"`
	Alpha     float64 `yaml:"alpha"`
	Out       string  `yaml:"out"`
	Scale     int     `yaml:"scale"`
}

func loadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyConfig copies file values into flag variables the user did not set
// on the command line. Flags absent from the running command are skipped.
func applyConfig(cmd *cobra.Command) error {
	fileWins := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && !f.Changed
	}

	if config.Collision != "" && fileWins("collision") {
		flagCollision = config.Collision
	}
	if config.Refract != "" && fileWins("refract") {
		flagRefract = config.Refract
	}
	if config.Solver != "" && fileWins("solver") {
		flagSolver = config.Solver
	}
	if config.TimeLimit != "" && fileWins("time-limit") {
		d, err := time.ParseDuration(config.TimeLimit)
		if err != nil {
			return fmt.Errorf("config time_limit: %w", err)
		}
		flagTimeLimit = d
	}
	if config.Seed != 0 && fileWins("seed") {
		flagSeed = config.Seed
	}
	if len(config.Seeds) > 0 && fileWins("seeds") {
		flagSeeds = append([]int64(nil), config.Seeds...)
	}
	if config.Workers > 0 && fileWins("workers") {
		flagWorkers = config.Workers
	}
	if config.Alpha > 0 && fileWins("alpha") {
		flagAlpha = config.Alpha
	}
	if config.Out != "" && fileWins("out") {
		flagOut = config.Out
	}
	if config.Scale > 0 {
		pngScale = config.Scale
	}
	return nil
}

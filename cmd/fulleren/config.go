package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config mirrors the annealing flags. File values fill in only the flags the
// user did not set explicitly on the command line, so the precedence is
// flag > file > built-in default.
type Config struct {
	Atoms       int     `yaml:"atoms"`
	Radius      float64 `yaml:"radius"`
	BetaMin     float64 `yaml:"beta_min"`
	BetaMax     float64 `yaml:"beta_max"`
	Power       float64 `yaml:"power"`
	Iterations  int     `yaml:"iterations"`
	Seed        int64   `yaml:"seed"`
	SampleEvery int     `yaml:"sample_every"`
	Out         string  `yaml:"out"`
	From        int     `yaml:"from"`
	To          int     `yaml:"to"`
	Parallel    int     `yaml:"parallel"`
}

// loadConfig reads --config, if given, and layers it under the explicit
// flags of the executing command.
func loadConfig(cmd *cobra.Command) error {
	if cfgFile == "" {
		return nil
	}
	raw, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", cfgFile, err)
	}
	applyConfig(cmd, cfg)
	slog.Debug("configuration loaded", "path", cfgFile)
	return nil
}

// applyConfig copies file values into the flag variables, skipping flags the
// user changed and flags the executing command does not define. Zero values
// in the file mean "not set".
func applyConfig(cmd *cobra.Command, cfg Config) {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Lookup(name) != nil && !flags.Changed(name) {
			apply()
		}
	}
	if cfg.Atoms > 0 {
		set("atoms", func() { atomCount = cfg.Atoms })
	}
	if cfg.Radius > 0 {
		set("radius", func() { sphereRadius = cfg.Radius })
	}
	if cfg.BetaMin > 0 {
		set("beta-min", func() { betaMin = cfg.BetaMin })
	}
	if cfg.BetaMax > 0 {
		set("beta-max", func() { betaMax = cfg.BetaMax })
	}
	if cfg.Power > 0 {
		set("power", func() { power = cfg.Power })
	}
	if cfg.Iterations > 0 {
		set("iterations", func() { iterations = cfg.Iterations })
	}
	if cfg.Seed != 0 {
		set("seed", func() { seed = cfg.Seed })
	}
	if cfg.SampleEvery > 0 {
		set("sample-every", func() { sampleEvery = cfg.SampleEvery })
	}
	if cfg.Out != "" {
		set("out", func() { outDir = cfg.Out })
	}
	if cfg.From > 0 {
		set("from", func() { sweepFrom = cfg.From })
	}
	if cfg.To > 0 {
		set("to", func() { sweepTo = cfg.To })
	}
	if cfg.Parallel > 0 {
		set("parallel", func() { parallel = cfg.Parallel })
	}
}

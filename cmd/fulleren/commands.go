package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// --- Command variables and shared flags ---
var (
	cfgFile string
	verbose bool

	atomCount     int
	inputPath     string
	sphereRadius  float64
	betaMin       float64
	betaMax       float64
	power         float64
	iterations    int
	seed          int64
	sampleEvery   int
	outDir        string
	showPositions bool

	sweepFrom int
	sweepTo   int
	parallel  int

	perAtom bool

	rootCmd = &cobra.Command{
		Use:   "fulleren",
		Short: "Simulated annealing search for low-energy atomic clusters",
		Long: `fulleren anneals N-atom clusters under a fixed Brenner-type bond-order
potential: a Metropolis Monte Carlo walk with per-atom spherical moves and a
global radial rescale, cooled along a power-law inverse-temperature schedule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return loadConfig(cmd)
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Anneal one cluster and export its traces and final geometry",
		RunE:  runAnneal, // Defined in cmd_run.go
	}

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Anneal a range of cluster sizes and tabulate energy per atom",
		RunE:  runSweep, // Defined in cmd_sweep.go
	}

	energyCmd = &cobra.Command{
		Use:   "energy [file]",
		Short: "Recompute the potential energy of a stored configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnergy, // Defined in cmd_energy.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML file with run defaults (explicit flags win)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	annealFlags(runCmd)
	runCmd.Flags().IntVarP(&atomCount, "atoms", "n", 30, "number of atoms (ignored with --input)")
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "coordinate file, one x y z triple per line")
	runCmd.Flags().BoolVar(&showPositions, "positions", false, "print the final coordinate table")

	annealFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 30, "smallest cluster size")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 60, "largest cluster size")
	sweepCmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "concurrent annealing runs")

	energyCmd.Flags().BoolVar(&perAtom, "per-atom", false, "print each atom's energy contribution")

	rootCmd.AddCommand(runCmd, sweepCmd, energyCmd)
}

// annealFlags registers the flags shared by every command that starts
// annealing runs. The backing variables are shared too: run and sweep are
// never executed in the same process.
func annealFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sphereRadius, "radius", 2.5, "initial placement sphere radius")
	cmd.Flags().Float64Var(&betaMin, "beta-min", 1, "initial inverse temperature")
	cmd.Flags().Float64Var(&betaMax, "beta-max", 100, "final inverse temperature")
	cmd.Flags().Float64Var(&power, "power", 2, "annealing schedule exponent")
	cmd.Flags().IntVar(&iterations, "iterations", 100000, "Monte Carlo iterations per run")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = fixed default stream)")
	cmd.Flags().IntVar(&sampleEvery, "sample-every", 100, "trace sampling stride (0 disables)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for exported data files")
}

// setupLogging installs the process-wide text logger on stderr.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

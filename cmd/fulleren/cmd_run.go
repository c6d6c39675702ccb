package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/dgrzelec/fulleren/anneal"
	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
	"github.com/dgrzelec/fulleren/datafile"
)

// Substream identifiers for seed derivation. Initial placement and the walk
// itself must not share a stream, or re-running with a different radius
// would silently shift the walk's draws.
const (
	placementStream uint64 = iota
	runStream
)

// runAnneal drives one annealing run end to end: build the starting
// configuration, run the walk, report, export.
func runAnneal(cmd *cobra.Command, _ []string) error {
	c, err := buildCluster()
	if err != nil {
		return err
	}
	pot := brenner.DefaultParams()

	slog.Info("annealing",
		"atoms", c.Len(),
		"iterations", iterations,
		"beta_min", betaMin,
		"beta_max", betaMax,
		"power", power,
		"seed", seed)

	res, err := anneal.Run(c, pot,
		anneal.WithBetaRange(betaMin, betaMax),
		anneal.WithPower(power),
		anneal.WithIterations(iterations),
		anneal.WithSeed(anneal.DeriveSeed(seed, runStream)),
		anneal.WithSampleEvery(sampleEvery),
	)
	if err != nil {
		return err
	}

	printRunSummary(cmd.OutOrStdout(), c, res)
	if showPositions {
		fmt.Fprint(cmd.OutOrStdout(), c.String())
	}
	if outDir != "" {
		return exportRun(c, res)
	}
	return nil
}

// buildCluster sources the starting configuration from --input when given,
// otherwise from random placement on a sphere.
func buildCluster() (*cluster.Cluster, error) {
	if inputPath != "" {
		coords, err := datafile.LoadPositions(inputPath)
		if err != nil {
			return nil, err
		}
		c, err := cluster.FromCartesian(coords)
		if err != nil {
			return nil, err
		}
		slog.Debug("configuration loaded", "path", inputPath, "atoms", c.Len())
		return c, nil
	}

	c, err := cluster.New(atomCount)
	if err != nil {
		return nil, err
	}
	rng := anneal.NewRNG(anneal.DeriveSeed(seed, placementStream))
	if err := c.RandomizeOnSphere(sphereRadius, rng); err != nil {
		return nil, err
	}
	slog.Debug("random placement", "atoms", atomCount, "radius", sphereRadius)
	return c, nil
}

// exportRun writes the final geometry, both traces and the pair-correlation
// histogram into outDir.
func exportRun(c *cluster.Cluster, res anneal.Result) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	if err := datafile.SavePositions(filepath.Join(outDir, "atoms.dat"), c.Cartesian()); err != nil {
		return err
	}

	if len(res.Trace) > 0 {
		its := make([]float64, len(res.Trace))
		energies := make([]float64, len(res.Trace))
		radii := make([]float64, len(res.Trace))
		for k, s := range res.Trace {
			its[k] = float64(s.Iteration)
			energies[k] = s.Energy
			radii[k] = s.MeanRadius
		}
		if err := datafile.SaveSeries(filepath.Join(outDir, "energy.dat"), its, energies); err != nil {
			return err
		}
		if err := datafile.SaveSeries(filepath.Join(outDir, "radius.dat"), its, radii); err != nil {
			return err
		}
	}

	hist := c.PairCorrelation()
	dr := 2.5 * c.MeanRadius() / float64(len(hist))
	centers := make([]float64, len(hist))
	floats.Span(centers, 0.5*dr, (float64(len(hist))-0.5)*dr)
	if err := datafile.SaveSeries(filepath.Join(outDir, "pcf.dat"), centers, hist); err != nil {
		return err
	}

	slog.Info("run data written", "dir", outDir)
	return nil
}

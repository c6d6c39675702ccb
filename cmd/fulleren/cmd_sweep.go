package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dgrzelec/fulleren/anneal"
	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
	"github.com/dgrzelec/fulleren/datafile"
)

// runSweep anneals every cluster size in [from, to], one independent run per
// size. Runs share nothing: each gets its own cluster and a seed derived
// from the base seed and the size, so results do not depend on the worker
// count or on completion order.
func runSweep(cmd *cobra.Command, _ []string) error {
	if sweepFrom <= 0 || sweepTo < sweepFrom {
		return fmt.Errorf("invalid size range %d..%d", sweepFrom, sweepTo)
	}
	if parallel < 1 {
		parallel = 1
	}

	sizes := make([]int, 0, sweepTo-sweepFrom+1)
	for n := sweepFrom; n <= sweepTo; n++ {
		sizes = append(sizes, n)
	}
	perAtomE := make([]float64, len(sizes))

	slog.Info("sweeping", "from", sweepFrom, "to", sweepTo, "parallel", parallel, "iterations", iterations)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(parallel)
	for idx, n := range sizes {
		idx, n := idx, n
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := annealSize(n)
			if err != nil {
				return fmt.Errorf("size %d: %w", n, err)
			}
			perAtomE[idx] = res.FinalEnergy / float64(n)
			slog.Info("size finished", "n", n, "energy_per_atom", perAtomE[idx])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printSweepTable(cmd.OutOrStdout(), sizes, perAtomE)

	if outDir == "" {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	xs := make([]float64, len(sizes))
	for i, n := range sizes {
		xs[i] = float64(n)
	}
	return datafile.SaveSeries(filepath.Join(outDir, "energy_per_atom.dat"), xs, perAtomE)
}

// annealSize performs one full annealing run for a random cluster of n
// atoms. Placement and walk take separate substreams of the size-specific
// seed.
func annealSize(n int) (anneal.Result, error) {
	c, err := cluster.New(n)
	if err != nil {
		return anneal.Result{}, err
	}
	base := anneal.DeriveSeed(seed, uint64(n))
	rng := anneal.NewRNG(anneal.DeriveSeed(base, placementStream))
	if err := c.RandomizeOnSphere(sphereRadius, rng); err != nil {
		return anneal.Result{}, err
	}
	return anneal.Run(c, brenner.DefaultParams(),
		anneal.WithBetaRange(betaMin, betaMax),
		anneal.WithPower(power),
		anneal.WithIterations(iterations),
		anneal.WithSeed(anneal.DeriveSeed(base, runStream)),
		anneal.WithSampleEvery(0),
	)
}

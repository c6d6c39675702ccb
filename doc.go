// Package fulleren is a simulated-annealing workbench for small atomic
// clusters: a Metropolis Monte Carlo engine over a fixed Brenner-type
// bond-order potential, with the diagnostics needed to judge what it found.
//
// 🚀 What is fulleren?
//
//	A small, deterministic library plus CLI that brings together:
//		• Dual-coordinate points: Cartesian & spherical, consistent by construction
//		• The bond-order potential: radial terms, smooth cutoff, angular penalty
//		• Cluster state: snapshots, radial rescaling, sphere randomization
//		• The annealing engine: power-law schedule, Metropolis rule, move kinds
//		• Diagnostics: mean radius, pair-correlation histogram, energy traces
//		• Plot-ready I/O: positions, traces and histograms as flat columns
//
// ✨ Why choose fulleren?
//
//   - Reproducible – one seeded generator per run, documented draw order
//   - Explicit – commit-or-rollback moves; energy caches refresh only on demand
//   - Tested – closed-form potential checks, round-trip coordinate laws
//
// Under the hood, everything is organized under five subpackages:
//
//	spherical/ — the immutable dual-representation Point value
//	brenner/   — potential parameters and energy evaluation
//	cluster/   — mutable cluster state + geometric diagnostics
//	anneal/    — schedule, acceptance rule, RNG streams, the Run loop
//	datafile/  — positions and two-column series on disk
//
// Quick start:
//
//	c, _ := cluster.New(30)
//	_ = c.RandomizeOnSphere(2.5, anneal.NewRNG(7))
//	res, err := anneal.Run(c, brenner.DefaultParams())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.FinalEnergy)
//
// The cmd/fulleren CLI wraps the same pipeline into run, sweep and energy
// commands.
//
//	go get github.com/dgrzelec/fulleren
package fulleren

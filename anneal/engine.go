// Package anneal - the Metropolis Monte Carlo run loop.
//
// Design principles:
//   - Deterministic: one seeded generator, fixed draw order, fixed atom scan
//     order; a (configuration, options) pair fully determines the walk.
//   - Commit or roll back: a rejected move leaves no trace. Positions are
//     restored and the pre-move energy is carried forward, never a stale
//     value from the rejected candidate.
//   - The cluster's energy cache is touched exactly once, on exit; all move
//     bookkeeping is local to the engine.
package anneal

import (
	"math/rand"

	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
	"github.com/dgrzelec/fulleren/spherical"
)

// Fixed proposal step scales. Local moves perturb each spherical coordinate
// of one atom proportionally to its current value; the global move rescales
// every radius by one shared factor. Multiplicative steps keep zero
// coordinates fixed: an atom with phi == 0 keeps phi == 0.
const (
	localStepR     = 1e-4
	localStepPhi   = 0.05
	localStepTheta = 0.05
	globalStepR    = 1e-4
)

// Run executes one annealing run on c under the potential pot.
//
// Each iteration evaluates the schedule once, proposes one local move per
// atom in fixed index order 0..n−1, then proposes one global radial rescale;
// every proposal is judged by the Metropolis rule at that iteration's beta.
// The generator is consumed in a fixed order: per local move u1 (radius),
// u2 (azimuth), u3 (polar), then the acceptance draw; per global move the
// factor draw, then the acceptance draw. Reordering the draws would change
// trajectories for a given seed, so the order is a compatibility contract.
//
// On return the cluster holds the final configuration with a freshly
// recomputed energy cache; Result carries the same value.
//
// Contracts:
//   - c is non-nil with pairwise distinct atom positions (coincident atoms
//     make the potential undefined);
//   - Run mutates c in place, is single-threaded and performs no I/O.
//
// Complexity: O(Iterations·n³) time (n local moves of O(n²) plus two full
// O(n³) evaluations per iteration); O(n) extra space for the global-move
// snapshot.
func Run(c *cluster.Cluster, pot brenner.Params, opts ...Option) (Result, error) {
	// Stage 1: validation. Fail fast, never inside the loop.
	if c == nil {
		return Result{}, ErrNilCluster
	}
	if err := pot.Validate(); err != nil {
		return Result{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2: run state.
	var (
		rng = NewRNG(o.Seed)
		sch = Schedule{
			BetaMin:    o.BetaMin,
			BetaMax:    o.BetaMax,
			Power:      o.Power,
			Iterations: o.Iterations,
		}
		res Result
		n   = c.Len()
	)
	if o.SampleEvery > 0 {
		res.Trace = make([]Sample, 0, o.Iterations/o.SampleEvery+1)
	}

	// Stage 3: the walk.
	for it := 0; it < o.Iterations; it++ {
		beta := sch.Beta(it)

		for i := 0; i < n; i++ {
			if localMove(c, pot, i, beta, rng) {
				res.LocalAccepted++
			} else {
				res.LocalRejected++
			}
		}

		energy, accepted := globalMove(c, pot, beta, rng)
		if accepted {
			res.GlobalAccepted++
		} else {
			res.GlobalRejected++
		}

		if o.SampleEvery > 0 && it%o.SampleEvery == 0 {
			res.Trace = append(res.Trace, Sample{
				Iteration:  it,
				Energy:     energy,
				MeanRadius: c.MeanRadius(),
			})
		}
	}

	// Stage 4: settle the caches and report.
	res.FinalEnergy = c.RecomputeEnergy(pot)
	res.FinalMeanRadius = c.MeanRadius()
	return res, nil
}

// localMove proposes a proportional perturbation of atom i's spherical
// coordinates and judges it by the change of that atom's own energy
// contribution. The rejected branch rebuilds the atom from the saved
// spherical triple through the constructor, so both coordinate
// representations stay consistent.
func localMove(c *cluster.Cluster, pot brenner.Params, i int, beta float64, rng *rand.Rand) bool {
	old := c.At(i)
	vOld := pot.AtomEnergy(c.Points(), i)

	u1 := rng.Float64()
	u2 := rng.Float64()
	u3 := rng.Float64()
	c.SetAt(i, spherical.NewSpherical(
		old.R()*(1+(2*u1-1)*localStepR),
		old.Phi()*(1+(2*u2-1)*localStepPhi),
		old.Theta()*(1+(2*u3-1)*localStepTheta),
	))
	vNew := pot.AtomEnergy(c.Points(), i)

	if rng.Float64() <= Acceptance(beta, vNew-vOld) {
		return true
	}
	c.SetAt(i, spherical.NewSpherical(old.R(), old.Phi(), old.Theta()))
	return false
}

// globalMove proposes one multiplicative rescale of every radius and judges
// it by explicitly recomputed totals. It returns the total energy of the
// configuration left in place: the candidate's on acceptance, the pre-move
// value on rollback.
func globalMove(c *cluster.Cluster, pot brenner.Params, beta float64, rng *rand.Rand) (float64, bool) {
	snap := c.Snapshot()
	eOld := pot.TotalEnergy(c.Points())

	factor := 1 + globalStepR*(2*rng.Float64()-1)
	c.ScaleRadii(factor)
	eNew := pot.TotalEnergy(c.Points())

	if rng.Float64() <= Acceptance(beta, eNew-eOld) {
		return eNew, true
	}
	_ = c.Restore(snap) // same length by construction
	return eOld, false
}

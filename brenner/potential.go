// Package brenner implements a fixed-parameter Brenner-type bond-order
// potential for small atomic clusters.
//
// The energy of a configuration is assembled from four ingredients:
//
//   - Repulsive / Attractive: exponential radial pair terms;
//   - Cutoff: a smooth half-cosine taper that switches pairs off between the
//     inner radius R1 and the outer radius R2;
//   - Angular: a three-body correction g(cos θ) with a hard penalty plateau
//     for positive cosines;
//   - bond order: B_ij = ½(b_ij + b_ji) with b_ij = (1+ksi_ij)^(−Del), which
//     dampens the attractive term according to how crowded the local
//     environment of the pair is.
//
// The total is E = ½·Σ_i v_i, where v_i sums f_c(r_ij)·(v_r − B_ij·v_a)
// over the neighbors of atom i within the outer cutoff. Pairs separated by
// more than R2 are skipped outright, before any bond-order work.
//
// Evaluation is pure: no caches, no mutation, no allocation. Coincident
// atoms make distances zero and angle cosines undefined; results for such
// degenerate input are unspecified.
package brenner

import (
	"math"

	"github.com/dgrzelec/fulleren/spherical"
)

// planarPenalty is the fixed angular value used whenever cos θ > 0. The
// plateau replaces the smooth correction for angles below 90°, pricing
// near-planar and compact local arrangements out of the low-energy region.
const planarPenalty = 20.0

// Repulsive evaluates the radial pair term v_r at separation r:
// De/(S−1)·exp(−√(2S)·λ·(r−R0)).
//
// Complexity: O(1).
func (p Params) Repulsive(r float64) float64 {
	return p.De / (p.S - 1) * math.Exp(-math.Sqrt(2*p.S)*p.Lambda*(r-p.R0))
}

// Attractive evaluates the radial pair term v_a at separation r:
// De·S/(S−1)·exp(−√(2/S)·λ·(r−R0)).
//
// Complexity: O(1).
func (p Params) Attractive(r float64) float64 {
	return p.De * p.S / (p.S - 1) * math.Exp(-math.Sqrt(2/p.S)*p.Lambda*(r-p.R0))
}

// Cutoff is the smooth radial switch f_c: exactly 1 up to R1, a half-cosine
// taper on (R1, R2], exactly 0 beyond R2.
//
// Complexity: O(1).
func (p Params) Cutoff(r float64) float64 {
	switch {
	case r <= p.R1:
		return 1
	case r <= p.R2:
		return 0.5 * (1 + math.Cos(math.Pi*(r-p.R1)/(p.R2-p.R1)))
	default:
		return 0
	}
}

// Angular is the three-body correction g(cos θ). Positive cosines hit the
// penalty plateau; otherwise g = a0·(1 + c0²/d0² − c0²/(d0² + (1+cos θ)²)).
//
// Complexity: O(1).
func (p Params) Angular(cosTheta float64) float64 {
	if cosTheta > 0 {
		return planarPenalty
	}
	c2 := p.C0 * p.C0
	d2 := p.D0 * p.D0
	t := 1 + cosTheta
	return p.A0 * (1 + c2/d2 - c2/(d2+t*t))
}

// ksi accumulates the environment sum of the ordered pair (i, j):
// Σ_{k≠i,j} f_c(r_ik)·g(cos θ_ijk), with θ_ijk the angle at atom i between
// the rays to j and to k. Third atoms beyond the outer cutoff contribute
// nothing and are skipped before any angular work.
func (p Params) ksi(pts []spherical.Point, i, j int) float64 {
	var sum float64
	for k := range pts {
		if k == i || k == j {
			continue
		}
		rik := spherical.Distance(pts[i], pts[k])
		if rik > p.R2 {
			continue
		}
		sum += p.Cutoff(rik) * p.Angular(spherical.CosAngle(pts[i], pts[j], pts[k]))
	}
	return sum
}

// bondOrder is the one-sided coefficient b_ij = (1 + ksi_ij)^(−Del).
func (p Params) bondOrder(pts []spherical.Point, i, j int) float64 {
	return math.Pow(1+p.ksi(pts, i, j), -p.Del)
}

// AtomEnergy returns the per-atom contribution
// v_i = Σ_{j≠i, r_ij≤R2} f_c(r_ij)·(v_r(r_ij) − B_ij·v_a(r_ij)),
// with the symmetrized bond order B_ij = ½(b_ij + b_ji).
//
// Contracts: atoms must occupy pairwise distinct positions.
//
// Complexity: O(n²) (O(n) neighbors, each carrying two O(n) environment
// sums).
func (p Params) AtomEnergy(pts []spherical.Point, i int) float64 {
	var vi float64
	for j := range pts {
		if j == i {
			continue
		}
		rij := spherical.Distance(pts[i], pts[j])
		if rij > p.R2 {
			continue
		}
		b := 0.5 * (p.bondOrder(pts, i, j) + p.bondOrder(pts, j, i))
		vi += p.Cutoff(rij) * (p.Repulsive(rij) - b*p.Attractive(rij))
	}
	return vi
}

// TotalEnergy returns E = ½·Σ_i v_i. The half compensates for every pair
// appearing in two per-atom sums.
//
// Complexity: O(n³).
func (p Params) TotalEnergy(pts []spherical.Point) float64 {
	var e float64
	for i := range pts {
		e += p.AtomEnergy(pts, i)
	}
	return 0.5 * e
}

// Package cluster owns the mutable state of one simulated atom cluster: an
// ordered, fixed-size sequence of points plus a cached total energy.
//
// The atom count is fixed at construction and index i names the same atom
// for the cluster's lifetime. Mutation happens only through the primitives
// below (SetAt, Restore, ScaleRadii, RandomizeOnSphere); none of them touch
// the energy cache. The cache is refreshed exclusively by RecomputeEnergy,
// so a reader always knows exactly which configuration a cached value
// belongs to.
//
// A Cluster is not safe for concurrent use. Concurrent annealing runs each
// take their own Cluster.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/spherical"
)

// Sentinel errors returned by constructors and mutators.
var (
	// ErrNoAtoms indicates a requested or supplied atom count of zero.
	ErrNoAtoms = errors.New("cluster: atom count must be positive")

	// ErrBadCoordinate indicates a NaN or infinite input coordinate.
	ErrBadCoordinate = errors.New("cluster: coordinates must be finite")

	// ErrBadSphereRadius indicates a non-positive randomization radius.
	ErrBadSphereRadius = errors.New("cluster: sphere radius must be positive")

	// ErrSnapshotSize indicates a snapshot whose length does not match the
	// cluster it is being restored into.
	ErrSnapshotSize = errors.New("cluster: snapshot length mismatch")
)

// Cluster is a fixed-size set of atoms under simulation.
type Cluster struct {
	points []spherical.Point
	energy float64
}

// New returns a cluster of n atoms, all at the origin with zero angles.
// Callers place the atoms (FromCartesian, RandomizeOnSphere) before
// evaluating energies; coincident atoms are a documented degeneracy of the
// potential.
func New(n int) (*Cluster, error) {
	if n <= 0 {
		return nil, ErrNoAtoms
	}
	return &Cluster{points: make([]spherical.Point, n)}, nil
}

// FromCartesian builds a cluster from an ordered list of Cartesian triples.
// Any non-finite coordinate fails the whole construction; a Cluster is never
// partially built.
func FromCartesian(coords [][3]float64) (*Cluster, error) {
	if len(coords) == 0 {
		return nil, ErrNoAtoms
	}
	pts := make([]spherical.Point, len(coords))
	for i, c := range coords {
		for _, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrBadCoordinate
			}
		}
		pts[i] = spherical.NewCartesian(c[0], c[1], c[2])
	}
	return &Cluster{points: pts}, nil
}

// Len returns the number of atoms.
func (c *Cluster) Len() int { return len(c.points) }

// At returns atom i. Panics on an out-of-range index, like slice indexing.
func (c *Cluster) At(i int) spherical.Point { return c.points[i] }

// SetAt replaces atom i. Panics on an out-of-range index, like slice
// indexing. The energy cache is left untouched.
func (c *Cluster) SetAt(i int, pt spherical.Point) { c.points[i] = pt }

// Points exposes the live backing slice for read-only evaluation in hot
// paths. Callers must not modify it; use SetAt, ScaleRadii or Restore.
func (c *Cluster) Points() []spherical.Point { return c.points }

// Cartesian returns the atoms as ordered Cartesian triples.
//
// Complexity: O(n) time and space.
func (c *Cluster) Cartesian() [][3]float64 {
	out := make([][3]float64, len(c.points))
	for i, pt := range c.points {
		out[i] = [3]float64{pt.X(), pt.Y(), pt.Z()}
	}
	return out
}

// Snapshot returns a defensive copy of all atom positions, suitable for a
// later Restore.
//
// Complexity: O(n) time and space.
func (c *Cluster) Snapshot() []spherical.Point {
	snap := make([]spherical.Point, len(c.points))
	copy(snap, c.points)
	return snap
}

// Restore replaces every atom position from a snapshot of this cluster.
// The energy cache is left untouched.
func (c *Cluster) Restore(snap []spherical.Point) error {
	if len(snap) != len(c.points) {
		return ErrSnapshotSize
	}
	copy(c.points, snap)
	return nil
}

// ScaleRadii rebuilds every atom from (r·factor, phi, theta). Angles pass
// through the spherical constructor unchanged; the Cartesian side is
// re-derived so both representations stay in sync.
//
// Complexity: O(n).
func (c *Cluster) ScaleRadii(factor float64) {
	for i, pt := range c.points {
		c.points[i] = spherical.NewSpherical(pt.R()*factor, pt.Phi(), pt.Theta())
	}
}

// RandomizeOnSphere places every atom on a sphere of the given radius,
// drawing per atom first phi uniform on [0, 2π], then theta uniform on
// [0, π]. Uniform theta is deliberately not uniform over the sphere
// surface; the resulting polar crowding is part of the sampling behavior.
//
// A nil rng falls back to a fixed deterministic stream.
func (c *Cluster) RandomizeOnSphere(radius float64, rng *rand.Rand) error {
	if radius <= 0 {
		return ErrBadSphereRadius
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	for i := range c.points {
		phi := 2 * math.Pi * rng.Float64()
		theta := math.Pi * rng.Float64()
		c.points[i] = spherical.NewSpherical(radius, phi, theta)
	}
	return nil
}

// Energy returns the cached total energy. The cache is valid only
// immediately after RecomputeEnergy; mutation primitives leave it stale on
// purpose.
func (c *Cluster) Energy() float64 { return c.energy }

// RecomputeEnergy evaluates the full potential over the current positions,
// refreshes the cache and returns the new value.
//
// Complexity: O(n³); see brenner.TotalEnergy.
func (c *Cluster) RecomputeEnergy(p brenner.Params) float64 {
	c.energy = p.TotalEnergy(c.points)
	return c.energy
}

// String renders a one-line header with the atom count and cached energy,
// followed by the fixed-width coordinate table, one atom per row.
func (c *Cluster) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cluster of %d atoms, energy %8.3f\n", len(c.points), c.energy)
	fmt.Fprintf(&b, "%-10s\t%-10s\t%-10s\t%-10s\t%-10s\t%-10s\n",
		"x", "y", "z", "r", "phi", "theta")
	for i := range c.points {
		b.WriteString(c.points[i].String())
		b.WriteByte('\n')
	}
	return b.String()
}

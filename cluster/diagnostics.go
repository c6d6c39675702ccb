// Package cluster - geometric diagnostics: mean radius and the radial
// pair-correlation histogram.
package cluster

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/dgrzelec/fulleren/spherical"
)

// PCFBins is the fixed resolution of the pair-correlation histogram.
const PCFBins = 100

// MeanRadius returns the arithmetic mean of the atoms' radial coordinates.
//
// Complexity: O(n).
func (c *Cluster) MeanRadius() float64 {
	rs := make([]float64, len(c.points))
	for i, pt := range c.points {
		rs[i] = pt.R()
	}
	return stat.Mean(rs, nil)
}

// PairCorrelation returns the radial pair-correlation histogram with PCFBins
// bins of width 2.5·MeanRadius()/PCFBins. Each unordered pair (i, j) adds
//
//	2·4π·mean_r² / (n²·2π·r_ij·dr)
//
// to bin floor(r_ij/dr). Pairs landing beyond the last bin are silently
// dropped; the histogram range is an accepted approximation, not an error.
//
// Complexity: O(n²) time, O(PCFBins) space.
func (c *Cluster) PairCorrelation() []float64 {
	hist := make([]float64, PCFBins)
	meanR := c.MeanRadius()
	dr := 2.5 * meanR / PCFBins
	n := float64(len(c.points))
	for i := 0; i < len(c.points); i++ {
		for j := i + 1; j < len(c.points); j++ {
			rij := spherical.Distance(c.points[i], c.points[j])
			m := int(math.Floor(rij / dr))
			if m < 0 || m >= PCFBins {
				continue
			}
			hist[m] += 2 * 4 * math.Pi * meanR * meanR / (n * n * 2 * math.Pi * rij * dr)
		}
	}
	return hist
}

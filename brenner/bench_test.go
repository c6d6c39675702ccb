package brenner_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/spherical"
)

// sinkEnergy keeps the compiler from eliding the benchmark bodies.
var sinkEnergy float64

// shellPoints spreads n atoms deterministically over a sphere shell, dense
// enough that most pairs fall inside the outer cutoff.
func shellPoints(n int, radius float64) []spherical.Point {
	pts := make([]spherical.Point, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		theta := math.Pi * (0.2 + 0.6*float64(i%7)/7)
		pts[i] = spherical.NewSpherical(radius, phi, theta)
	}
	return pts
}

func BenchmarkTotalEnergy(b *testing.B) {
	p := brenner.DefaultParams()
	for _, n := range []int{10, 30, 60} {
		pts := shellPoints(n, 2.5)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkEnergy = p.TotalEnergy(pts)
			}
		})
	}
}

func BenchmarkAtomEnergy(b *testing.B) {
	p := brenner.DefaultParams()
	pts := shellPoints(30, 2.5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkEnergy = p.AtomEnergy(pts, 15)
	}
}

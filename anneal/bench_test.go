package anneal_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/dgrzelec/fulleren/anneal"
	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
)

// benchCoords spreads n atoms over a shell, mirroring the CLI's random
// placement densities without pulling randomness into the benchmark.
func benchCoords(n int) [][3]float64 {
	coords := make([][3]float64, n)
	for i := range coords {
		phi := 2 * math.Pi * float64(i) / float64(n)
		theta := math.Pi * (0.2 + 0.6*float64(i%7)/7)
		coords[i] = [3]float64{
			2.5 * math.Sin(theta) * math.Cos(phi),
			2.5 * math.Sin(theta) * math.Sin(phi),
			2.5 * math.Cos(theta),
		}
	}
	return coords
}

func BenchmarkRun(b *testing.B) {
	pot := brenner.DefaultParams()
	for _, n := range []int{5, 15, 30} {
		coords := benchCoords(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c, err := cluster.FromCartesian(coords)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := anneal.Run(c, pot,
					anneal.WithIterations(5),
					anneal.WithSampleEvery(0),
				); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScheduleBeta(b *testing.B) {
	s := anneal.Schedule{BetaMin: 1, BetaMax: 100, Power: 2, Iterations: 100000}
	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = s.Beta(i % s.Iterations)
	}
	_ = sink
}

package anneal_test

import (
	"fmt"
	"math"

	"github.com/dgrzelec/fulleren/anneal"
	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
)

// A quadratic schedule spends most of its iterations hot and cools sharply
// at the end.
func ExampleSchedule_Beta() {
	s := anneal.Schedule{BetaMin: 1, BetaMax: 100, Power: 2, Iterations: 100}
	fmt.Printf("%.2f %.2f %.2f\n", s.Beta(0), s.Beta(50), s.Beta(100))
	// Output: 1.00 25.75 100.00
}

func ExampleAcceptance() {
	// Downhill moves are certainties; uphill moves decay exponentially.
	fmt.Printf("%.3f\n", anneal.Acceptance(2, -1))
	fmt.Printf("%.3f\n", anneal.Acceptance(2, math.Ln2/2)) // beta·delta = ln 2
	// Output:
	// 1.000
	// 0.500
}

func ExampleRun() {
	c, err := cluster.FromCartesian([][3]float64{
		{0.9, 0.1, 0.2},
		{-0.5, -0.1, -0.15},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := anneal.Run(c, brenner.DefaultParams(),
		anneal.WithBetaRange(1, 50),
		anneal.WithIterations(10),
		anneal.WithSeed(7),
		anneal.WithSampleEvery(5),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("local proposals:", res.LocalAccepted+res.LocalRejected)
	fmt.Println("global proposals:", res.GlobalAccepted+res.GlobalRejected)
	fmt.Println("trace samples:", len(res.Trace))
	// Output:
	// local proposals: 20
	// global proposals: 10
	// trace samples: 2
}

// Seed zero is not "random": it selects a fixed default stream, so default
// runs are reproducible too.
func ExampleNewRNG() {
	a := anneal.NewRNG(0)
	b := anneal.NewRNG(0)
	fmt.Println(a.Int63() == b.Int63())
	fmt.Println(anneal.DeriveSeed(1, 2) == anneal.DeriveSeed(1, 2))
	// Output:
	// true
	// true
}

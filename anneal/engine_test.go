package anneal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrzelec/fulleren/anneal"
	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
	"github.com/dgrzelec/fulleren/spherical"
)

// boundPair builds a two-atom cluster near the potential's equilibrium
// separation, slightly stretched so the walk has somewhere to go.
func boundPair(t *testing.T) *cluster.Cluster {
	t.Helper()
	c, err := cluster.FromCartesian([][3]float64{
		{0.9, 0.1, 0.2},
		{-0.5, -0.1, -0.15},
	})
	require.NoError(t, err)
	return c
}

func TestRun_Validation(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()

	t.Run("nil cluster", func(t *testing.T) {
		t.Parallel()
		_, err := anneal.Run(nil, pot)
		assert.ErrorIs(t, err, anneal.ErrNilCluster)
	})

	t.Run("invalid potential", func(t *testing.T) {
		t.Parallel()
		bad := pot
		bad.S = 1
		_, err := anneal.Run(boundPair(t), bad)
		assert.ErrorIs(t, err, brenner.ErrStiffnessRatio)
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name    string
			opt     anneal.Option
			wantErr error
		}{
			{"negative beta", anneal.WithBetaRange(-1, 5), anneal.ErrBetaRange},
			{"inverted betas", anneal.WithBetaRange(5, 1), anneal.ErrBetaRange},
			{"zero power", anneal.WithPower(0), anneal.ErrBadPower},
			{"negative power", anneal.WithPower(-2), anneal.ErrBadPower},
			{"zero iterations", anneal.WithIterations(0), anneal.ErrBadIterations},
			{"negative iterations", anneal.WithIterations(-5), anneal.ErrBadIterations},
		}
		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				c := boundPair(t)
				before := c.Snapshot()
				_, err := anneal.Run(c, pot, tc.opt)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, before, c.Snapshot(), "failed run must not move atoms")
			})
		}
	})
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, anneal.Options{
		BetaMin:     1,
		BetaMax:     100,
		Power:       2,
		Iterations:  100000,
		Seed:        0,
		SampleEvery: 100,
	}, anneal.DefaultOptions())
}

// Equal seeds must reproduce the whole run: result, trace and final
// geometry, bit for bit.
func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	opts := []anneal.Option{
		anneal.WithBetaRange(1, 50),
		anneal.WithPower(2),
		anneal.WithIterations(60),
		anneal.WithSeed(7),
		anneal.WithSampleEvery(10),
	}

	c1, c2 := boundPair(t), boundPair(t)
	res1, err := anneal.Run(c1, pot, opts...)
	require.NoError(t, err)
	res2, err := anneal.Run(c2, pot, opts...)
	require.NoError(t, err)

	assert.Equal(t, res1, res2)
	assert.Equal(t, c1.Snapshot(), c2.Snapshot())
}

func TestRun_SeedsDiverge(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	c1, c2 := boundPair(t), boundPair(t)

	_, err := anneal.Run(c1, pot, anneal.WithIterations(50), anneal.WithSeed(1), anneal.WithSampleEvery(0))
	require.NoError(t, err)
	_, err = anneal.Run(c2, pot, anneal.WithIterations(50), anneal.WithSeed(2), anneal.WithSampleEvery(0))
	require.NoError(t, err)

	assert.NotEqual(t, c1.Snapshot(), c2.Snapshot())
}

func TestRun_TraceShape(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()

	t.Run("stride ten", func(t *testing.T) {
		t.Parallel()
		res, err := anneal.Run(boundPair(t), pot,
			anneal.WithIterations(100), anneal.WithSampleEvery(10))
		require.NoError(t, err)
		require.Len(t, res.Trace, 10)
		for k, s := range res.Trace {
			assert.Equal(t, 10*k, s.Iteration)
			assert.False(t, math.IsNaN(s.Energy), "sample %d", k)
			assert.Greater(t, s.MeanRadius, 0.0, "sample %d", k)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		res, err := anneal.Run(boundPair(t), pot,
			anneal.WithIterations(20), anneal.WithSampleEvery(0))
		require.NoError(t, err)
		assert.Empty(t, res.Trace)
	})

	t.Run("every iteration", func(t *testing.T) {
		t.Parallel()
		res, err := anneal.Run(boundPair(t), pot,
			anneal.WithIterations(5), anneal.WithSampleEvery(1))
		require.NoError(t, err)
		assert.Len(t, res.Trace, 5)
	})
}

func TestRun_CountersAddUp(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	c, err := cluster.FromCartesian([][3]float64{
		{0, 0, 0.2},
		{1.5, 0, 0.2},
		{0.75, 1.3, 0.2},
	})
	require.NoError(t, err)

	const iterations = 40
	res, err := anneal.Run(c, pot,
		anneal.WithIterations(iterations), anneal.WithSampleEvery(0))
	require.NoError(t, err)

	assert.Equal(t, iterations*c.Len(), res.LocalAccepted+res.LocalRejected)
	assert.Equal(t, iterations, res.GlobalAccepted+res.GlobalRejected)
}

// The run must leave the cluster cache refreshed: FinalEnergy, the cache and
// a from-scratch evaluation all agree on the final geometry.
func TestRun_FinalStateConsistent(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	c := boundPair(t)
	res, err := anneal.Run(c, pot,
		anneal.WithIterations(30), anneal.WithSeed(3), anneal.WithSampleEvery(0))
	require.NoError(t, err)

	assert.Equal(t, res.FinalEnergy, c.Energy())
	assert.Equal(t, pot.TotalEnergy(c.Points()), res.FinalEnergy)
	assert.Equal(t, c.MeanRadius(), res.FinalMeanRadius)
}

// A sampled energy must describe the configuration it was recorded with.
// For a one-iteration run the sampled configuration IS the final one, so the
// trace value has to match the from-scratch final energy exactly, in
// particular after a rejected global move, whose rollback must carry the
// pre-move total instead of the discarded candidate's.
func TestRun_TraceEnergyMatchesConfiguration(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	for seed := int64(1); seed <= 10; seed++ {
		res, err := anneal.Run(boundPair(t), pot,
			anneal.WithBetaRange(1e6, 1e6), // cold: uphill proposals get rejected
			anneal.WithIterations(1),
			anneal.WithSeed(seed),
			anneal.WithSampleEvery(1),
		)
		require.NoError(t, err)
		require.Len(t, res.Trace, 1)
		assert.Equal(t, res.FinalEnergy, res.Trace[0].Energy, "seed %d", seed)
	}
}

// Atoms at the exact origin are a fixed point of every move: multiplicative
// steps cannot lift a zero coordinate off zero.
func TestRun_OriginAtomStaysPut(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	c, err := cluster.FromCartesian([][3]float64{
		{0, 0, 0},
		{1.5, 0, 0},
	})
	require.NoError(t, err)

	_, err = anneal.Run(c, pot,
		anneal.WithIterations(50), anneal.WithSeed(11), anneal.WithSampleEvery(0))
	require.NoError(t, err)

	assert.Equal(t, spherical.Point{}, c.At(0))
}

// An isothermal walk at high beta must settle a stretched pair into the
// potential well: the two-atom ground state energy is exactly −De at
// separation R0, and thermal fluctuations at beta = 800 are orders of
// magnitude smaller than the asserted bracket.
func TestRun_IsothermalPairFindsTheWell(t *testing.T) {
	t.Parallel()

	pot := brenner.DefaultParams()
	c := boundPair(t)

	res, err := anneal.Run(c, pot,
		anneal.WithBetaRange(800, 800),
		anneal.WithPower(1),
		anneal.WithIterations(30000),
		anneal.WithSeed(5),
		anneal.WithSampleEvery(0),
	)
	require.NoError(t, err)

	assert.Greater(t, res.FinalEnergy, -pot.De-0.001, "below the exact well depth")
	assert.Less(t, res.FinalEnergy, -pot.De+0.12, "failed to reach the well")

	// The pair stays bound: separation hovers near R0.
	sep := spherical.Distance(c.At(0), c.At(1))
	assert.InDelta(t, pot.R0, sep, 0.05)
}

// Package anneal - options, results and sentinel errors.
//
// Design principles:
//   - Options travel by value and are assembled with functional setters;
//     validation happens once, inside Run, never in the hot loop.
//   - No logging, no panics on user input - only sentinel errors from this
//     file.
package anneal

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilCluster indicates a nil cluster passed to Run.
	ErrNilCluster = errors.New("anneal: cluster is nil")

	// ErrBetaRange indicates inverse-temperature bounds that do not satisfy
	// 0 ≤ BetaMin ≤ BetaMax.
	ErrBetaRange = errors.New("anneal: beta bounds must satisfy 0 ≤ min ≤ max")

	// ErrBadPower indicates a non-positive schedule exponent.
	ErrBadPower = errors.New("anneal: schedule power must be positive")

	// ErrBadIterations indicates a non-positive iteration budget.
	ErrBadIterations = errors.New("anneal: iteration count must be positive")
)

// Options configures one annealing run.
type Options struct {
	// BetaMin and BetaMax bound the inverse temperature. The walk starts
	// hot (BetaMin, uphill moves likely) and cools toward BetaMax
	// (near-greedy descent).
	BetaMin, BetaMax float64

	// Power is the schedule exponent p in
	// beta(it) = BetaMin + (it/Iterations)^p·(BetaMax−BetaMin).
	// p > 1 keeps the walk hot longer; p = 1 cools linearly.
	Power float64

	// Iterations is the number of Monte Carlo iterations. Each iteration
	// performs one local sweep over all atoms plus one global move.
	Iterations int

	// Seed selects the random stream; 0 selects the fixed default stream.
	// Equal seeds reproduce trajectories bit for bit.
	Seed int64

	// SampleEvery is the trace stride: every k-th iteration appends one
	// Sample to Result.Trace. Values ≤ 0 disable trace capture.
	SampleEvery int
}

// Option mutates Options before validation.
type Option func(*Options)

// WithBetaRange sets the inverse-temperature bounds.
func WithBetaRange(min, max float64) Option {
	return func(o *Options) { o.BetaMin, o.BetaMax = min, max }
}

// WithPower sets the annealing schedule exponent.
func WithPower(p float64) Option {
	return func(o *Options) { o.Power = p }
}

// WithIterations sets the iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithSeed pins the random stream. Seed 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSampleEvery sets the trace stride; k ≤ 0 disables trace capture.
func WithSampleEvery(k int) Option {
	return func(o *Options) { o.SampleEvery = k }
}

// DefaultOptions returns the reference run configuration: a quadratic
// schedule from beta 1 to 100 over 100000 iterations, sampled every 100.
func DefaultOptions() Options {
	return Options{
		BetaMin:     1,
		BetaMax:     100,
		Power:       2,
		Iterations:  100000,
		Seed:        0,
		SampleEvery: 100,
	}
}

// validate reports the first structural defect, or nil.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.BetaMin < 0 || o.BetaMax < o.BetaMin {
		return ErrBetaRange
	}
	if o.Power <= 0 {
		return ErrBadPower
	}
	if o.Iterations <= 0 {
		return ErrBadIterations
	}
	return nil
}

// Sample is one trace point, captured after the moves of the recorded
// iteration.
type Sample struct {
	Iteration  int
	Energy     float64
	MeanRadius float64
}

// Result summarizes a finished run.
type Result struct {
	// FinalEnergy is the total energy of the final configuration,
	// recomputed from scratch on exit. The cluster's cache is refreshed to
	// the same value.
	FinalEnergy float64

	// FinalMeanRadius is the mean radial coordinate on exit.
	FinalMeanRadius float64

	// LocalAccepted and LocalRejected count per-atom move outcomes.
	LocalAccepted, LocalRejected int

	// GlobalAccepted and GlobalRejected count whole-cluster rescale
	// outcomes.
	GlobalAccepted, GlobalRejected int

	// Trace holds the periodic samples; empty when SampleEvery ≤ 0.
	Trace []Sample
}

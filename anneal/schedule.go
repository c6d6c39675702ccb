// Package anneal - inverse-temperature schedule and the Metropolis rule.
package anneal

import "math"

// Schedule maps an iteration index to an inverse temperature:
//
//	beta(it) = BetaMin + (it/Iterations)^Power · (BetaMax − BetaMin)
//
// It is a stateless value; both move kinds of one iteration share the beta
// evaluated at that iteration.
type Schedule struct {
	BetaMin, BetaMax float64
	Power            float64
	Iterations       int
}

// Beta evaluates the schedule at iteration it. It reaches BetaMax exactly
// at it == Iterations; the run loop stops one short, so the last iteration
// runs marginally below BetaMax.
//
// Complexity: O(1).
func (s Schedule) Beta(it int) float64 {
	frac := float64(it) / float64(s.Iterations)
	return s.BetaMin + math.Pow(frac, s.Power)*(s.BetaMax-s.BetaMin)
}

// Acceptance is the Metropolis criterion min(1, exp(−beta·delta)).
// Non-positive energy changes return exactly 1.
//
// Complexity: O(1).
func Acceptance(beta, delta float64) float64 {
	if delta <= 0 {
		return 1
	}
	return math.Exp(-beta * delta)
}

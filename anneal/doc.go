// Package anneal provides a simulated-annealing Metropolis Monte Carlo
// engine for atomic clusters.
//
// One Run performs a fixed number of iterations. Each iteration:
//
//   - evaluates the inverse-temperature schedule once,
//     beta(it) = BetaMin + (it/Iterations)^Power·(BetaMax−BetaMin);
//
//   - proposes one local move per atom, in fixed index order 0..n−1:
//     a proportional perturbation of the atom's spherical coordinates,
//     judged by the change of that atom's own energy contribution;
//
//   - proposes one global move: a multiplicative rescale of every radius,
//     judged by the change of the explicitly recomputed total energy.
//
// Every proposal passes through the same Metropolis rule: accept with
// probability min(1, exp(−beta·ΔE)). Rejection is ordinary control flow;
// the move is rolled back and the walk continues.
//
// Randomness comes from a single seeded generator with a documented draw
// order, so a (configuration, options) pair fully determines the
// trajectory. Concurrent runs derive independent streams with DeriveSeed
// and never share state.
//
// Use this package when you need low-energy cluster geometries under the
// brenner potential and can afford O(Iterations·n³) work.
package anneal

// Package hmm holds the explicit hidden Markov model: an initial state
// distribution, a dense row-stochastic transition matrix and a dense
// row-stochastic emission matrix, stored row-major in flat slices.
//
// ✨ Contract:
//   - Construction with explicit parameters copies every slice and checks
//     shapes only; probability validity is the caller's claim until
//     Validate is run. Violated rows are a validation error, never
//     silently normalized.
//   - NewRandom builds scaled random distributions from an explicit
//     *rand.Rand, so results are reproducible and there is no hidden
//     package-level generator.
//   - Lookups are pure; checked forms return ErrIndexOutOfRange, *At
//     forms panic like slice indexing and exist for hot loops.
//   - The only mutators are SetTransitionRow and SetEmissionRow, used by
//     the training driver in the baumwelch package. A Model is therefore
//     single-writer: do not train the same instance from two goroutines
//     without external exclusion. Read-only sharing of an untrained or
//     quiescent Model is safe.
//
// ⚙️ Usage:
//
//	m, err := hmm.NewRandom(3, 2, rand.New(rand.NewSource(1)))
//	if err != nil { ... }
//	if err := m.Validate(); err != nil { ... } // fresh models always pass
//	p := m.TransitionAt(0, 1)                  // P(state 1 | state 0)
//
// Validate uses StochasticTol (1e-9) so callers can detect numerical
// drift after many training sweeps.
package hmm

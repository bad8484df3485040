// Package hmm defines sentinel errors and tolerances for the explicit
// hidden Markov model.
package hmm

import "errors"

// StochasticTol is the absolute tolerance used by Validate when checking
// that each distribution row sums to 1.
const StochasticTol = 1e-9

var (
	// ErrDimension indicates a non-positive state or output count.
	ErrDimension = errors.New("hmm: dimensions must be > 0")

	// ErrShape indicates a parameter slice whose length does not match
	// the declared dimensions.
	ErrShape = errors.New("hmm: parameter shape mismatch")

	// ErrIndexOutOfRange indicates a lookup or row update outside the
	// valid state/output range.
	ErrIndexOutOfRange = errors.New("hmm: index out of range")

	// ErrNegativeEntry indicates a negative probability entry found by
	// Validate.
	ErrNegativeEntry = errors.New("hmm: negative probability entry")

	// ErrNotStochastic indicates a distribution row whose sum deviates
	// from 1 by more than StochasticTol.
	ErrNotStochastic = errors.New("hmm: row is not stochastic")

	// ErrNilRand indicates a nil random source was passed to NewRandom.
	ErrNilRand = errors.New("hmm: rand source is nil")
)

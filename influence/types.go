// Package influence defines sentinel errors and the Operator result type.
package influence

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilModel is returned when a nil *hmm.Model is supplied.
	ErrNilModel = errors.New("influence: model is nil")

	// ErrNilGraph is returned when a nil *transition.Graph is supplied.
	ErrNilGraph = errors.New("influence: graph is nil")

	// ErrIndexOutOfRange indicates a start index outside [0, n).
	ErrIndexOutOfRange = errors.New("influence: start index out of range")

	// ErrNotCyclic indicates the start index does not lie on a cycle: the
	// traversal failed to return to it within n steps.
	ErrNotCyclic = errors.New("influence: start index is not on a cycle")

	// ErrAlphabet indicates the graph emits labels outside the model's
	// output alphabet.
	ErrAlphabet = errors.New("influence: graph labels exceed model alphabet")

	// ErrNotSquare indicates a non-square matrix passed to SteadyState.
	ErrNotSquare = errors.New("influence: matrix is not square")

	// ErrEigenFailed indicates the eigen factorization did not converge.
	ErrEigenFailed = errors.New("influence: eigen factorization failed")
)

// Operator bundles the influence matrix of one cycle with its dominant
// eigenstructure, for inspection and diagnostics.
type Operator struct {
	// Matrix is the s×s one-period influence operator.
	Matrix *mat.Dense

	// Period is the cycle length that was traversed.
	Period int

	// DominantValue is the eigenvalue of Matrix with the largest modulus.
	DominantValue complex128

	// Steady is the dominant eigenvector scaled to sum 1 (when its mass
	// is nonzero): the steady-state hidden-state distribution conditioned
	// on the model reproducing the cycle's output sequence.
	Steady []float64
}

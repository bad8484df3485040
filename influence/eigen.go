package influence

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// steadyMassTol is the threshold below which a dominant eigenvector's
// total mass is considered zero and left unnormalized.
const steadyMassTol = 1e-12

// SteadyState computes the dominant eigenpair of an influence matrix
// using gonum's dense eigen solver.
//
// Stage 1 (Factorize): left-eigenvector decomposition of M. With
// M[from][to] convention the stationary direction v satisfies vᵀM = λvᵀ,
// a left eigenpair.
// Stage 2 (Select): the eigenvalue of largest modulus and its vector.
// Stage 3 (Normalize): the real part of the vector is scaled to sum 1
// (the influence matrix is entrywise non-negative, so its dominant
// eigenpair is real up to phase by Perron–Frobenius); a vector with
// near-zero mass is returned unscaled.
//
// Complexity: O(s³).
func SteadyState(M *mat.Dense) ([]float64, complex128, error) {
	if M == nil {
		return nil, 0, fmt.Errorf("SteadyState: nil matrix: %w", ErrNotSquare)
	}
	r, c := M.Dims()
	if r != c {
		return nil, 0, fmt.Errorf("SteadyState: dims %d×%d: %w", r, c, ErrNotSquare)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(M, mat.EigenLeft); !ok {
		return nil, 0, fmt.Errorf("SteadyState: %w", ErrEigenFailed)
	}

	// Pick the eigenvalue with the largest modulus.
	values := eig.Values(nil)
	dom := 0
	for k := 1; k < len(values); k++ {
		if cmplx.Abs(values[k]) > cmplx.Abs(values[dom]) {
			dom = k
		}
	}

	var vecs mat.CDense
	eig.LeftVectorsTo(&vecs)

	steady := make([]float64, r)
	for i := 0; i < r; i++ {
		steady[i] = real(vecs.At(i, dom))
	}

	// Scaling by 1/sum both normalizes and fixes the arbitrary sign of
	// the eigenvector.
	if sum := floats.Sum(steady); sum > steadyMassTol || sum < -steadyMassTol {
		floats.Scale(1/sum, steady)
	}

	return steady, values[dom], nil
}

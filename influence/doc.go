// Package influence builds, for an index lying on a cycle of a functional
// transition graph, the linear operator describing one full traversal of
// that cycle under an HMM's transition/emission structure, and extracts
// its dominant eigenstructure.
//
// 🚀 What does the influence matrix mean?
//
//	Walking the cycle from its entry index emits a fixed label sequence.
//	Multiplying the transition matrix by the emission probability of the
//	actually observed label at every step, in traversal order, yields an
//	s×s matrix M where M[from][to] is the unnormalized probability of
//	being in hidden state "to" after one full period, having started in
//	"from", while continuously reproducing that exact output sequence.
//	The dominant eigenvector of M approximates the steady-state hidden
//	state distribution conditioned on the model tracking the cycle.
//
// ✨ Contract:
//   - The start index must lie on a cycle; callers normally validate it
//     with the cycles package first. Matrix still guards the traversal
//     with the graph size and fails with ErrNotCyclic instead of looping.
//   - The eigen-decomposition uses gonum's dense solver (mat.Eigen); this
//     is a diagnostic operation, not needed for training to converge.
//
// ⚙️ Usage:
//
//	op, err := influence.CycleOperator(m, g, entry)
//	if err != nil { ... }
//	op.Period        // cycle length traversed
//	op.DominantValue // dominant eigenvalue of the operator
//	op.Steady        // dominant eigenvector scaled to sum 1
//
// Complexity: Matrix is O(period · s²) plus one O(s³) factorization in
// SteadyState.
package influence

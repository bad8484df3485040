package influence

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/KommuSoft/fsmarkov/hmm"
	"github.com/KommuSoft/fsmarkov/transition"
)

// Matrix accumulates the one-period influence operator for the cycle
// containing start.
//
// Stage 1 (Validate): non-nil inputs, start in range, graph alphabet
// contained in the model's.
// Stage 2 (Accumulate): starting from the identity, at each step multiply
// by the transition matrix and scale column "to" by the emission
// probability of the label observed at the current graph index, then
// advance the index. Row f of the result is therefore the distribution
// obtained from the unit vector at hidden state f.
// Stage 3 (Terminate): stop when the graph index returns to start. A
// cycle returns within its period ≤ n steps; if n steps pass without a
// return the index was transient and ErrNotCyclic is reported instead of
// looping forever.
//
// Complexity: O(period · s²) time, O(s²) memory.
func Matrix(m *hmm.Model, g *transition.Graph, start int) (*mat.Dense, error) {
	M, _, err := matrixWithPeriod(m, g, start)

	return M, err
}

// matrixWithPeriod is the shared kernel behind Matrix and CycleOperator,
// additionally reporting the traversed cycle length.
func matrixWithPeriod(m *hmm.Model, g *transition.Graph, start int) (*mat.Dense, int, error) {
	if m == nil {
		return nil, 0, fmt.Errorf("Matrix: %w", ErrNilModel)
	}
	if g == nil {
		return nil, 0, fmt.Errorf("Matrix: %w", ErrNilGraph)
	}
	n := g.Size()
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("Matrix: start=%d n=%d: %w", start, n, ErrIndexOutOfRange)
	}
	if g.NumOutputs() > m.NumOutputs() {
		return nil, 0, fmt.Errorf("Matrix: graph alphabet %d > model alphabet %d: %w",
			g.NumOutputs(), m.NumOutputs(), ErrAlphabet)
	}

	s := m.NumStates()

	// Dense copies of the model parameters for the accumulation loop.
	a := mat.NewDense(s, s, nil)
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			a.Set(i, j, m.TransitionAt(i, j))
		}
	}

	// Start from the identity: row f is the unit vector of hidden state f.
	acc := mat.NewDense(s, s, nil)
	for i := 0; i < s; i++ {
		acc.Set(i, i, 1)
	}

	tmp := mat.NewDense(s, s, nil)
	idx := start
	period := 0
	for {
		sym := g.OutputAt(idx)

		// One step: transition, then keep only the mass consistent with
		// the observed label (scale column "to" by B[to][sym]).
		tmp.Mul(acc, a)
		for to := 0; to < s; to++ {
			e := m.EmissionAt(to, sym)
			for from := 0; from < s; from++ {
				tmp.Set(from, to, tmp.At(from, to)*e)
			}
		}
		acc, tmp = tmp, acc

		idx = g.NextAt(idx)
		period++
		if idx == start {
			break
		}
		if period >= n {
			return nil, 0, fmt.Errorf("Matrix: start=%d: no return within %d steps: %w",
				start, n, ErrNotCyclic)
		}
	}

	return acc, period, nil
}

// CycleOperator builds the influence matrix for the cycle containing
// start and extracts its dominant eigenstructure in one call.
func CycleOperator(m *hmm.Model, g *transition.Graph, start int) (*Operator, error) {
	M, period, err := matrixWithPeriod(m, g, start)
	if err != nil {
		return nil, err
	}

	steady, value, err := SteadyState(M)
	if err != nil {
		return nil, err
	}

	return &Operator{Matrix: M, Period: period, DominantValue: value, Steady: steady}, nil
}

package baumwelch

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/KommuSoft/fsmarkov/hmm"
	"github.com/KommuSoft/fsmarkov/transition"
)

// Step performs one EM sweep: for every start index with positive weight
// it walks g for SampleLength steps, runs the scaled forward/backward
// recursions over the observed labels, accumulates gamma/xi posteriors
// weighted by the start's support, and finally re-estimates the model's
// transition and emission rows from the aggregated statistics.
//
// The return value is the L1 distance between old and new parameters
// (transition plus emission), the caller's convergence measure. An
// all-zero support is a no-op returning 0. Rows whose posterior
// denominator is zero keep their prior values for this sweep.
//
// A nil opts derives DefaultOptions(g, support).
//
// Complexity: O(#positive starts · SampleLength · s²) time,
// O(SampleLength · s + s² + s·o) memory.
func Step(m *hmm.Model, g *transition.Graph, support []float64, opts *Options) (float64, error) {
	// Stage 1: validate arguments.
	if m == nil {
		return 0, fmt.Errorf("Step: %w", ErrNilModel)
	}
	if g == nil {
		return 0, fmt.Errorf("Step: %w", ErrNilGraph)
	}
	if len(support) != g.Size() {
		return 0, fmt.Errorf("Step: len(support)=%d size=%d: %w",
			len(support), g.Size(), ErrSupportLength)
	}
	for k, w := range support {
		if w < 0 {
			return 0, fmt.Errorf("Step: support[%d]=%g: %w", k, w, ErrNegativeWeight)
		}
	}
	if opts == nil {
		derived, err := DefaultOptions(g, support)
		if err != nil {
			return 0, err
		}
		opts = &derived
	}
	if opts.SampleLength <= 0 {
		return 0, fmt.Errorf("Step: sampleLength=%d: %w", opts.SampleLength, ErrSampleLength)
	}
	if g.NumOutputs() > m.NumOutputs() {
		return 0, fmt.Errorf("Step: graph alphabet %d > model alphabet %d: %w",
			g.NumOutputs(), m.NumOutputs(), ErrAlphabet)
	}
	if floats.Sum(support) == 0 {
		// No observation mass at all: leave the parameters untouched.
		return 0, nil
	}

	s := m.NumStates()
	o := m.NumOutputs()
	T := opts.SampleLength

	// Stage 2: snapshot the current parameters; the recursions read the
	// old values while the update below writes the new ones.
	pi := m.InitialVector()
	A := m.TransitionMatrix()
	B := m.EmissionMatrix()

	// Aggregated statistics across all start indices.
	transNum := newMatrix(s, s)
	transDen := make([]float64, s)
	emisNum := newMatrix(s, o)
	emisDen := make([]float64, s)

	// Shared recursion buffers, reused per start index.
	alpha := newMatrix(T, s)
	beta := newMatrix(T, s)
	scale := make([]float64, T)
	gammaRow := make([]float64, s)
	xiRow := newMatrix(s, s)

	// Stage 3: accumulate posteriors per positive-weight start index.
	for k, w := range support {
		if w == 0 {
			continue
		}

		obs, err := g.Walk(k, T)
		if err != nil {
			return 0, fmt.Errorf("Step: %w", err)
		}

		if !forward(alpha, scale, pi, A, B, obs) {
			// The model assigns this sequence zero probability; no
			// posterior is defined, so the start contributes nothing.
			continue
		}
		backward(beta, scale, A, B, obs)

		for t := 0; t < T; t++ {
			// Gamma: state occupancy at t, normalized per timestep.
			den := 0.0
			for i := 0; i < s; i++ {
				gammaRow[i] = alpha[t][i] * beta[t][i]
				den += gammaRow[i]
			}
			if den == 0 {
				continue
			}
			inv := 1 / den
			for i := 0; i < s; i++ {
				gi := gammaRow[i] * inv
				emisNum[i][obs[t]] += w * gi
				emisDen[i] += w * gi
				if t < T-1 {
					transDen[i] += w * gi
				}
			}

			// Xi: transition occupancy between t and t+1.
			if t == T-1 {
				continue
			}
			xiDen := 0.0
			for i := 0; i < s; i++ {
				for j := 0; j < s; j++ {
					x := alpha[t][i] * A[i][j] * B[j][obs[t+1]] * beta[t+1][j]
					xiRow[i][j] = x
					xiDen += x
				}
			}
			if xiDen == 0 {
				continue
			}
			inv = w / xiDen
			for i := 0; i < s; i++ {
				for j := 0; j < s; j++ {
					transNum[i][j] += xiRow[i][j] * inv
				}
			}
		}
	}

	// Stage 4: re-estimate rows with positive denominators; report the
	// total parameter movement.
	change := 0.0
	row := make([]float64, s)
	for i := 0; i < s; i++ {
		if transDen[i] <= 0 {
			continue
		}
		for j := 0; j < s; j++ {
			row[j] = transNum[i][j] / transDen[i]
		}
		change += floats.Distance(row, A[i], 1)
		if err := m.SetTransitionRow(i, row); err != nil {
			return 0, fmt.Errorf("Step: %w", err)
		}
	}
	erow := make([]float64, o)
	for i := 0; i < s; i++ {
		if emisDen[i] <= 0 {
			continue
		}
		for k := 0; k < o; k++ {
			erow[k] = emisNum[i][k] / emisDen[i]
		}
		change += floats.Distance(erow, B[i], 1)
		if err := m.SetEmissionRow(i, erow); err != nil {
			return 0, fmt.Errorf("Step: %w", err)
		}
	}

	return change, nil
}

// Train runs Step repeatedly until the parameter change drops to tol or
// maxSweeps sweeps have run, whichever comes first, and returns the number
// of sweeps performed. SampleLength is resolved once so every sweep sees
// the same sample, preserving the monotone convergence guarantee.
func Train(m *hmm.Model, g *transition.Graph, support []float64, opts *Options, maxSweeps int, tol float64) (int, error) {
	if maxSweeps <= 0 {
		return 0, fmt.Errorf("Train: maxSweeps=%d: %w", maxSweeps, ErrMaxSweeps)
	}
	if opts == nil {
		derived, err := DefaultOptions(g, support)
		if err != nil {
			return 0, err
		}
		opts = &derived
	}

	for sweep := 1; sweep <= maxSweeps; sweep++ {
		change, err := Step(m, g, support, opts)
		if err != nil {
			return sweep - 1, err
		}
		if change <= tol {
			return sweep, nil
		}
	}

	return maxSweeps, nil
}

// forward fills the rescaled forward variables:
// alpha[t][j] ∝ P(obs[0..t], state=j), normalized per timestep with the
// normalizer recorded in scale[t]. Returns false when some prefix has zero
// probability under the model, in which case no posterior exists.
func forward(alpha [][]float64, scale []float64, pi []float64, A, B [][]float64, obs []int) bool {
	s := len(pi)

	for j := 0; j < s; j++ {
		alpha[0][j] = pi[j] * B[j][obs[0]]
	}
	c := floats.Sum(alpha[0])
	if c == 0 {
		return false
	}
	scale[0] = c
	floats.Scale(1/c, alpha[0])

	for t := 1; t < len(obs); t++ {
		for j := 0; j < s; j++ {
			sum := 0.0
			for i := 0; i < s; i++ {
				sum += alpha[t-1][i] * A[i][j]
			}
			alpha[t][j] = B[j][obs[t]] * sum
		}
		if c = floats.Sum(alpha[t]); c == 0 {
			return false
		}
		scale[t] = c
		floats.Scale(1/c, alpha[t])
	}

	return true
}

// backward fills the backward variables rescaled with the forward scale
// factors: beta[T-1][i] = 1 and
// beta[t][i] = Σ_j A[i][j]·B[j][obs[t+1]]·beta[t+1][j] / scale[t+1].
// With this convention alpha[t][i]·beta[t][i] is proportional to the
// gamma posterior at every t.
func backward(beta [][]float64, scale []float64, A, B [][]float64, obs []int) {
	T := len(obs)
	s := len(A)

	for i := 0; i < s; i++ {
		beta[T-1][i] = 1
	}
	for t := T - 2; t >= 0; t-- {
		for i := 0; i < s; i++ {
			sum := 0.0
			for j := 0; j < s; j++ {
				sum += A[i][j] * B[j][obs[t+1]] * beta[t+1][j]
			}
			beta[t][i] = sum / scale[t+1]
		}
	}
}

// newMatrix allocates a zeroed rows×cols matrix as a slice of rows.
func newMatrix(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	return out
}

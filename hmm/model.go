package hmm

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Model is an explicit HMM over s hidden states and o output symbols.
//
// Parameters live in flat row-major slices: initial has length s,
// transition length s*s (row i = P(·|state i)), emission length s*o
// (row i = P(symbol·|state i)).
type Model struct {
	s, o    int
	initial []float64 // length s
	trans   []float64 // length s*s, row-major
	emis    []float64 // length s*o, row-major
}

// modelErrorf wraps an underlying error with Model method context.
func modelErrorf(method string, err error) error {
	return fmt.Errorf("Model.%s: %w", method, err)
}

// New constructs a Model from explicit parameters.
// Stage 1 (Validate): numStates, numOutputs > 0 and slice lengths s, s*s, s*o.
// Stage 2 (Prepare): copy every slice; the caller's storage is never aliased.
// Probability validity (non-negative rows summing to 1) is deliberately NOT
// checked here; run Validate when that claim matters.
// Complexity: O(s² + s·o).
func New(numStates, numOutputs int, initial, transition, emission []float64) (*Model, error) {
	if numStates <= 0 || numOutputs <= 0 {
		return nil, fmt.Errorf("New: states=%d outputs=%d: %w", numStates, numOutputs, ErrDimension)
	}
	if len(initial) != numStates {
		return nil, fmt.Errorf("New: len(initial)=%d want %d: %w", len(initial), numStates, ErrShape)
	}
	if len(transition) != numStates*numStates {
		return nil, fmt.Errorf("New: len(transition)=%d want %d: %w",
			len(transition), numStates*numStates, ErrShape)
	}
	if len(emission) != numStates*numOutputs {
		return nil, fmt.Errorf("New: len(emission)=%d want %d: %w",
			len(emission), numStates*numOutputs, ErrShape)
	}

	m := &Model{
		s:       numStates,
		o:       numOutputs,
		initial: make([]float64, numStates),
		trans:   make([]float64, numStates*numStates),
		emis:    make([]float64, numStates*numOutputs),
	}
	copy(m.initial, initial)
	copy(m.trans, transition)
	copy(m.emis, emission)

	return m, nil
}

// NewRandom constructs a Model with scaled random distributions: every row
// is drawn uniformly and normalized to sum 1. The random source is
// explicit for reproducibility.
// Complexity: O(s² + s·o).
func NewRandom(numStates, numOutputs int, rng *rand.Rand) (*Model, error) {
	if numStates <= 0 || numOutputs <= 0 {
		return nil, fmt.Errorf("NewRandom: states=%d outputs=%d: %w", numStates, numOutputs, ErrDimension)
	}
	if rng == nil {
		return nil, fmt.Errorf("NewRandom: %w", ErrNilRand)
	}

	m := &Model{
		s:       numStates,
		o:       numOutputs,
		initial: randomRow(numStates, rng),
		trans:   make([]float64, 0, numStates*numStates),
		emis:    make([]float64, 0, numStates*numOutputs),
	}
	for i := 0; i < numStates; i++ {
		m.trans = append(m.trans, randomRow(numStates, rng)...)
		m.emis = append(m.emis, randomRow(numOutputs, rng)...)
	}

	return m, nil
}

// randomRow draws n uniform values and scales them into a distribution.
// Uniform draws are strictly positive with probability 1, so the row sum
// cannot be zero in practice; a zero sum falls back to the uniform row.
func randomRow(n int, rng *rand.Rand) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = rng.Float64()
	}
	if sum := floats.Sum(row); sum > 0 {
		floats.Scale(1/sum, row)
	} else {
		for i := range row {
			row[i] = 1 / float64(n)
		}
	}

	return row
}

// NumStates returns the hidden state count s.
func (m *Model) NumStates() int { return m.s }

// NumOutputs returns the output alphabet size o.
func (m *Model) NumOutputs() int { return m.o }

// Initial returns P(state = j at t = 0), or ErrIndexOutOfRange.
func (m *Model) Initial(j int) (float64, error) {
	if j < 0 || j >= m.s {
		return 0, modelErrorf("Initial", ErrIndexOutOfRange)
	}

	return m.initial[j], nil
}

// Transition returns P(state = j at t+1 | state = i at t), or
// ErrIndexOutOfRange.
func (m *Model) Transition(i, j int) (float64, error) {
	if i < 0 || i >= m.s || j < 0 || j >= m.s {
		return 0, modelErrorf("Transition", ErrIndexOutOfRange)
	}

	return m.trans[i*m.s+j], nil
}

// Emission returns P(observe = k | state = i), or ErrIndexOutOfRange.
func (m *Model) Emission(i, k int) (float64, error) {
	if i < 0 || i >= m.s || k < 0 || k >= m.o {
		return 0, modelErrorf("Emission", ErrIndexOutOfRange)
	}

	return m.emis[i*m.o+k], nil
}

// InitialAt is the unchecked form of Initial for hot loops.
func (m *Model) InitialAt(j int) float64 { return m.initial[j] }

// TransitionAt is the unchecked form of Transition for hot loops.
func (m *Model) TransitionAt(i, j int) float64 { return m.trans[i*m.s+j] }

// EmissionAt is the unchecked form of Emission for hot loops.
func (m *Model) EmissionAt(i, k int) float64 { return m.emis[i*m.o+k] }

// InitialVector returns a copy of the initial distribution.
// Complexity: O(s).
func (m *Model) InitialVector() []float64 {
	out := make([]float64, m.s)
	copy(out, m.initial)

	return out
}

// TransitionMatrix returns a copy of the transition matrix as s rows of
// length s.
// Complexity: O(s²).
func (m *Model) TransitionMatrix() [][]float64 {
	return m.copyRows(m.trans, m.s)
}

// EmissionMatrix returns a copy of the emission matrix as s rows of
// length o.
// Complexity: O(s·o).
func (m *Model) EmissionMatrix() [][]float64 {
	return m.copyRows(m.emis, m.o)
}

// copyRows splits flat row-major storage into s copied rows of width cols.
func (m *Model) copyRows(flat []float64, cols int) [][]float64 {
	rows := make([][]float64, m.s)
	for i := 0; i < m.s; i++ {
		row := make([]float64, cols)
		copy(row, flat[i*cols:(i+1)*cols])
		rows[i] = row
	}

	return rows
}

// SetTransitionRow replaces transition row i with a copy of row.
// This is the training driver's update hook; no other mutator exists.
// Complexity: O(s).
func (m *Model) SetTransitionRow(i int, row []float64) error {
	if i < 0 || i >= m.s {
		return modelErrorf("SetTransitionRow", ErrIndexOutOfRange)
	}
	if len(row) != m.s {
		return fmt.Errorf("Model.SetTransitionRow: len(row)=%d want %d: %w", len(row), m.s, ErrShape)
	}
	copy(m.trans[i*m.s:(i+1)*m.s], row)

	return nil
}

// SetEmissionRow replaces emission row i with a copy of row.
// This is the training driver's update hook; no other mutator exists.
// Complexity: O(o).
func (m *Model) SetEmissionRow(i int, row []float64) error {
	if i < 0 || i >= m.s {
		return modelErrorf("SetEmissionRow", ErrIndexOutOfRange)
	}
	if len(row) != m.o {
		return fmt.Errorf("Model.SetEmissionRow: len(row)=%d want %d: %w", len(row), m.o, ErrShape)
	}
	copy(m.emis[i*m.o:(i+1)*m.o], row)

	return nil
}

// Clone returns a deep copy of the Model.
// Complexity: O(s² + s·o).
func (m *Model) Clone() *Model {
	cp := &Model{
		s:       m.s,
		o:       m.o,
		initial: make([]float64, len(m.initial)),
		trans:   make([]float64, len(m.trans)),
		emis:    make([]float64, len(m.emis)),
	}
	copy(cp.initial, m.initial)
	copy(cp.trans, m.trans)
	copy(cp.emis, m.emis)

	return cp
}

// Validate reports whether all three parameter blocks are valid
// probability distributions: every entry non-negative and every row
// summing to 1 within StochasticTol. The first violation is returned with
// its location; nil means the model is row-stochastic.
// Complexity: O(s² + s·o).
func (m *Model) Validate() error {
	if err := validateRow("initial", 0, m.initial); err != nil {
		return err
	}
	for i := 0; i < m.s; i++ {
		if err := validateRow("transition", i, m.trans[i*m.s:(i+1)*m.s]); err != nil {
			return err
		}
		if err := validateRow("emission", i, m.emis[i*m.o:(i+1)*m.o]); err != nil {
			return err
		}
	}

	return nil
}

// validateRow checks one distribution row for negativity and unit sum.
func validateRow(block string, row int, vals []float64) error {
	for k, v := range vals {
		if v < 0 {
			return fmt.Errorf("Model.Validate: %s[%d][%d]=%g: %w", block, row, k, v, ErrNegativeEntry)
		}
	}
	if sum := floats.Sum(vals); sum < 1-StochasticTol || sum > 1+StochasticTol {
		return fmt.Errorf("Model.Validate: %s row %d sums to %.12f: %w", block, row, sum, ErrNotStochastic)
	}

	return nil
}

// String implements fmt.Stringer with a fixed-width dump of all three
// parameter blocks. Purely presentational.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("HMM(states=%d, outputs=%d)\n", m.s, m.o))
	sb.WriteString("initial:   ")
	writeRow(&sb, m.initial)
	sb.WriteString("transition:\n")
	for i := 0; i < m.s; i++ {
		sb.WriteString("  ")
		writeRow(&sb, m.trans[i*m.s:(i+1)*m.s])
	}
	sb.WriteString("emission:\n")
	for i := 0; i < m.s; i++ {
		sb.WriteString("  ")
		writeRow(&sb, m.emis[i*m.o:(i+1)*m.o])
	}

	return sb.String()
}

// writeRow appends one fixed-width row of probabilities.
func writeRow(sb *strings.Builder, vals []float64) {
	for _, v := range vals {
		sb.WriteString(fmt.Sprintf("%9.6f", v))
	}
	sb.WriteByte('\n')
}

// Canonical Graph builders. Each builder validates its arguments, derives
// the next/output tables deterministically, and delegates to New so all
// construction invariants live in one place.

package transition

import (
	"fmt"
	"math/rand"
)

// Explicit constructs a Graph from a variadic next table and a LabelFn.
// A nil label defaults to IdentityLabelFn.
//
// Example: Explicit(transition.ModLabelFn(2), 4, 0, 6, 2, 1, 6, 5, 7)
// builds the eight-node graph used throughout this module's tests.
// Complexity: O(n).
func Explicit(label LabelFn, next ...int) (*Graph, error) {
	if label == nil {
		label = IdentityLabelFn
	}
	outputs := make([]int, len(next))
	for i := range next {
		outputs[i] = label(i)
	}

	return New(next, outputs)
}

// Ring constructs the n-cycle: next[i] = (i+1) mod n.
// A nil label defaults to IdentityLabelFn.
// Complexity: O(n).
func Ring(n int, label LabelFn) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Ring: n=%d: %w", n, ErrInvalidSize)
	}
	if label == nil {
		label = IdentityLabelFn
	}

	next := make([]int, n)
	outputs := make([]int, n)
	for i := 0; i < n; i++ {
		next[i] = (i + 1) % n
		outputs[i] = label(i)
	}

	return New(next, outputs)
}

// SelfLoops constructs a graph of len(outputs) fixed points: next[i] = i.
// Every index is its own strongly connected group of period 1.
// Complexity: O(n).
func SelfLoops(outputs []int) (*Graph, error) {
	if len(outputs) == 0 {
		return nil, fmt.Errorf("SelfLoops: empty outputs: %w", ErrInvalidSize)
	}

	next := make([]int, len(outputs))
	for i := range next {
		next[i] = i
	}

	return New(next, outputs)
}

// Random constructs a uniformly random functional graph of n indices with
// labels drawn from [0, numOutputs). The random source is explicit so the
// caller controls reproducibility; there is no package-level generator.
// Complexity: O(n).
func Random(n, numOutputs int, rng *rand.Rand) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrInvalidSize)
	}
	if numOutputs <= 0 {
		return nil, fmt.Errorf("Random: numOutputs=%d: %w", numOutputs, ErrInvalidAlphabet)
	}
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNilRand)
	}

	next := make([]int, n)
	outputs := make([]int, n)
	for i := 0; i < n; i++ {
		next[i] = rng.Intn(n)
		outputs[i] = rng.Intn(numOutputs)
	}

	return New(next, outputs)
}

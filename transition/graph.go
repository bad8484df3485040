package transition

import (
	"fmt"
	"strings"
)

// Graph is an immutable functional graph: a total map next over [0, n)
// plus a non-negative output label per index.
//
// All fields are fixed at construction and never reallocated, so a *Graph
// is safe for concurrent read-only use without synchronization.
type Graph struct {
	n      int   // number of indices
	next   []int // next[i] ∈ [0, n), length n
	out    []int // out[i] ≥ 0, length n
	numOut int   // 1 + max(out), 0 when n == 0
}

// graphErrorf wraps an underlying error with Graph method context.
func graphErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Graph.%s(%d): %w", method, idx, err)
}

// New constructs a Graph from explicit next and output tables.
// Stage 1 (Validate): equal lengths, all targets in [0,n), all labels ≥ 0.
// Stage 2 (Prepare): copy both slices; the caller's slices are never aliased.
// Stage 3 (Finalize): record the output alphabet bound.
// An empty graph (n = 0) is valid.
// Complexity: O(n) time and memory.
func New(next, outputs []int) (*Graph, error) {
	// Validate matching table lengths.
	if len(next) != len(outputs) {
		return nil, fmt.Errorf("New: len(next)=%d len(outputs)=%d: %w",
			len(next), len(outputs), ErrLengthMismatch)
	}
	n := len(next)

	// Validate every transition target and output label.
	numOut := 0
	for i := 0; i < n; i++ {
		if next[i] < 0 || next[i] >= n {
			return nil, fmt.Errorf("New: next[%d]=%d outside [0,%d): %w",
				i, next[i], n, ErrTargetOutOfRange)
		}
		if outputs[i] < 0 {
			return nil, fmt.Errorf("New: outputs[%d]=%d: %w",
				i, outputs[i], ErrNegativeOutput)
		}
		if outputs[i]+1 > numOut {
			numOut = outputs[i] + 1
		}
	}

	// Copy tables so the Graph owns its storage.
	nextCopy := make([]int, n)
	copy(nextCopy, next)
	outCopy := make([]int, n)
	copy(outCopy, outputs)

	return &Graph{n: n, next: nextCopy, out: outCopy, numOut: numOut}, nil
}

// Size returns the number of indices n.
// Complexity: O(1).
func (g *Graph) Size() int { return g.n }

// NumOutputs returns the output alphabet bound: 1 + the largest label,
// or 0 for the empty graph.
// Complexity: O(1).
func (g *Graph) NumOutputs() int { return g.numOut }

// Next returns the successor of index i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (g *Graph) Next(i int) (int, error) {
	if i < 0 || i >= g.n {
		return 0, graphErrorf("Next", i, ErrIndexOutOfRange)
	}

	return g.next[i], nil
}

// Output returns the label attached to index i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (g *Graph) Output(i int) (int, error) {
	if i < 0 || i >= g.n {
		return 0, graphErrorf("Output", i, ErrIndexOutOfRange)
	}

	return g.out[i], nil
}

// NextAt is the unchecked form of Next for hot loops.
// Panics exactly like slice indexing when i is out of range.
func (g *Graph) NextAt(i int) int { return g.next[i] }

// OutputAt is the unchecked form of Output for hot loops.
// Panics exactly like slice indexing when i is out of range.
func (g *Graph) OutputAt(i int) int { return g.out[i] }

// Walk returns the output labels observed over a bounded walk:
// result[t] is the label of the index reached after t applications of next,
// starting at start, for t in [0, steps).
// Stage 1 (Validate): start in range, steps ≥ 0.
// Stage 2 (Execute): iterate next, recording labels.
// Complexity: O(steps) time and memory.
func (g *Graph) Walk(start, steps int) ([]int, error) {
	if start < 0 || start >= g.n {
		return nil, graphErrorf("Walk", start, ErrIndexOutOfRange)
	}
	if steps < 0 {
		return nil, fmt.Errorf("Graph.Walk(%d): steps=%d: %w", start, steps, ErrNegativeSteps)
	}

	seq := make([]int, steps)
	idx := start
	for t := 0; t < steps; t++ {
		seq[t] = g.out[idx]
		idx = g.next[idx]
	}

	return seq, nil
}

// String implements fmt.Stringer with a fixed-width index/next/output table.
// Intended for debugging; external renderers (DOT etc.) should use the
// accessors instead.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("FunctionalGraph(n=%d)\n", g.n))
	sb.WriteString("  idx  next  out\n")
	for i := 0; i < g.n; i++ {
		sb.WriteString(fmt.Sprintf("  %3d  %4d  %3d\n", i, g.next[i], g.out[i]))
	}

	return sb.String()
}

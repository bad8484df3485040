// Package transition defines sentinel errors and label helpers for
// functional transition graphs.
package transition

import "errors"

// Sentinel errors for graph construction and lookups.
var (
	// ErrLengthMismatch indicates next and outputs slices differ in length.
	ErrLengthMismatch = errors.New("transition: next and outputs length mismatch")

	// ErrTargetOutOfRange indicates a next value outside [0, n).
	ErrTargetOutOfRange = errors.New("transition: next target out of range")

	// ErrNegativeOutput indicates a negative output label.
	ErrNegativeOutput = errors.New("transition: output label is negative")

	// ErrIndexOutOfRange indicates a lookup index outside [0, n).
	ErrIndexOutOfRange = errors.New("transition: index out of range")

	// ErrNegativeSteps indicates a negative walk length.
	ErrNegativeSteps = errors.New("transition: steps must be non-negative")

	// ErrInvalidSize indicates a builder was asked for a non-positive size.
	ErrInvalidSize = errors.New("transition: size must be > 0")

	// ErrInvalidAlphabet indicates a builder was asked for a non-positive
	// output alphabet size.
	ErrInvalidAlphabet = errors.New("transition: alphabet size must be > 0")

	// ErrNilRand indicates a nil random source was passed to Random.
	ErrNilRand = errors.New("transition: rand source is nil")
)

// LabelFn produces the output label for a node from its zero-based index.
// It must be pure and deterministic: the same idx always yields the same
// label, and the label must be non-negative.
type LabelFn func(idx int) int

// IdentityLabelFn labels each node with its own index, e.g. 0→0, 42→42.
// Complexity: O(1). Never returns a negative label for a valid index.
func IdentityLabelFn(idx int) int { return idx }

// ConstLabelFn returns a LabelFn that labels every node with the same value v.
// Complexity: O(1) per call.
func ConstLabelFn(v int) LabelFn {
	return func(int) int { return v }
}

// ModLabelFn returns a LabelFn that labels node idx with idx % m,
// producing an alphabet of exactly m symbols over any contiguous index range.
// Complexity: O(1) per call.
func ModLabelFn(m int) LabelFn {
	return func(idx int) int { return idx % m }
}

package influence_test

import (
	"fmt"

	"github.com/KommuSoft/fsmarkov/hmm"
	"github.com/KommuSoft/fsmarkov/influence"
	"github.com/KommuSoft/fsmarkov/transition"
)

// ExampleMatrix shows the period-1 reduction: for a single hidden state
// on a self-loop node the operator collapses to the scalar
// transition · emission-of-the-observed-label.
func ExampleMatrix() {
	m, _ := hmm.New(1, 2,
		[]float64{1},
		[]float64{0.6},
		[]float64{0.3, 0.7},
	)
	g, _ := transition.SelfLoops([]int{1})

	M, _ := influence.Matrix(m, g, 0)
	fmt.Printf("%.2f\n", M.At(0, 0))
	// Output: 0.42
}

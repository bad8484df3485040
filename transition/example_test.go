package transition_test

import (
	"fmt"

	"github.com/KommuSoft/fsmarkov/transition"
)

// ExampleGraph_Walk builds a 3-ring with binary labels and observes the
// first six labels of the walk from index 0.
func ExampleGraph_Walk() {
	g, _ := transition.Explicit(transition.ModLabelFn(2), 1, 2, 0)

	seq, _ := g.Walk(0, 6)
	fmt.Println(seq)
	// Output: [0 1 0 0 1 0]
}

// ExampleNew constructs a graph explicitly and inspects it.
func ExampleNew() {
	g, _ := transition.New(
		[]int{4, 0, 6, 2, 1, 6, 5, 7},
		[]int{0, 1, 0, 1, 0, 1, 0, 1},
	)

	fmt.Println(g.Size())
	fmt.Println(g.NumOutputs())
	// Output:
	// 8
	// 2
}

package baumwelch_test

import (
	"fmt"
	"math/rand"

	"github.com/KommuSoft/fsmarkov/baumwelch"
	"github.com/KommuSoft/fsmarkov/hmm"
	"github.com/KommuSoft/fsmarkov/transition"
)

// ExampleStep fits a random model against the walk starting at index 2 of
// the reference graph. One sweep moves the parameters and keeps every row
// stochastic.
func ExampleStep() {
	g, _ := transition.New(
		[]int{4, 0, 6, 2, 1, 6, 5, 7},
		[]int{0, 1, 0, 1, 0, 1, 0, 1},
	)
	m, _ := hmm.NewRandom(3, 2, rand.New(rand.NewSource(42)))

	support := make([]float64, g.Size())
	support[2] = 1

	change, _ := baumwelch.Step(m, g, support, &baumwelch.Options{SampleLength: 10})
	fmt.Println(change > 0)
	fmt.Println(m.Validate() == nil)
	// Output:
	// true
	// true
}

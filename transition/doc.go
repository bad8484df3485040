// Package transition defines the functional transition graph: a finite,
// immutable map next: [0,n) → [0,n) with a small-integer output label per
// index. It is the substrate every other package in this module analyzes.
//
// 🚀 What is a functional graph?
//
//	A directed graph in which every node has exactly one outgoing edge —
//	i.e. a total function from the index domain to itself. Walking it from
//	any start index produces an infinite, eventually-periodic sequence of
//	output labels ("rho" shape: a tail leading into a cycle).
//
// ✨ Key properties:
//   - Immutable after construction: Next/Output tables are copied in and
//     never reallocated, so a *Graph may be shared freely across
//     goroutines without locking.
//   - Fail-fast construction: out-of-range targets, negative labels and
//     length mismatches are rejected with sentinel errors.
//   - Canonical builders (Explicit, Ring, SelfLoops, Random) mirror common
//     test and simulation shapes; Random takes its *rand.Rand explicitly,
//     so there is no hidden package-level state.
//
// ⚙️ Usage:
//
//	g, err := transition.New(
//	  []int{4, 0, 6, 2, 1, 6, 5, 7}, // next
//	  []int{0, 1, 0, 1, 0, 1, 0, 1}, // outputs
//	)
//	if err != nil { ... }
//	seq, _ := g.Walk(2, 10) // the 10 labels observed from index 2
//
// See the cycles package for structural analysis (groups, periods, tails)
// and the baumwelch package for fitting an HMM to walks of a Graph.
package transition

// Package fsmarkov analyzes deterministic functional graphs and trains
// explicit hidden Markov models against the label sequences those graphs
// produce.
//
// 🚀 What is fsmarkov?
//
//	A finite-state machine whose every state has exactly one successor
//	("functional graph") emits an infinite, eventually-periodic stream of
//	output labels from any start index. This module classifies that
//	cyclic structure and fits an HMM so that the model's own generative
//	process approximates the deterministic walk:
//		• transition — the immutable graph substrate plus canonical builders
//		• cycles     — strongly connected groups, tails, tour targets, periods
//		• hmm        — the explicit model: initial/transition/emission matrices
//		• influence  — the one-period cycle operator and its eigenstructure
//		• baumwelch  — scaled forward/backward EM sweeps over bounded walks
//
// ✨ Why choose fsmarkov?
//
//   - Deterministic outputs – group and index ordering is reproducible,
//     suitable for bit-exact comparison in tests
//   - Fail-fast contracts – sentinel errors on malformed graphs, shapes
//     and preconditions; numerical degeneracy is guarded, never fatal
//   - Safe sharing – graphs and analyses are immutable after construction;
//     only training mutates a model, under single-writer discipline
//
// Quick ASCII example (the reference graph used across the tests):
//
//	3 → 2 → 6 ⇄ 5      0 → 4 → 1 ↩ 0      7 ↺
//
//	two tails feeding a 2-cycle, one 3-cycle, one self-loop:
//	global period lcm(3,2,1) = 6, longest tail 2.
//
// Dive into the package docs for per-component contracts and complexity,
// and the example tests for end-to-end usage.
//
//	go get github.com/KommuSoft/fsmarkov
package fsmarkov

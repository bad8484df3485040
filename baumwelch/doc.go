// Package baumwelch re-estimates the transition and emission parameters
// of an explicit HMM against the deterministic output sequence obtained by
// walking a functional transition graph from a weighted set of start
// indices.
//
// 🚀 How does EM meet a deterministic source?
//
//	The graph produces an infinite, eventually-periodic label sequence
//	per start index — not an i.i.d. sample. Each training call therefore
//	fixes a finite SampleLength and runs one Baum-Welch sweep over the
//	first SampleLength labels of every positive-weight walk: scaled
//	forward pass, scaled backward pass, gamma/xi posteriors, then a
//	weighted parameter update aggregated across all starts before
//	normalizing. Repeated calls with the same SampleLength converge
//	monotonically in log-likelihood (the standard Baum-Welch guarantee).
//
// ✨ Numerical notes:
//   - The recursions rescale α and β at every timestep, so long samples
//     never underflow; posteriors consume only ratios in which the scale
//     factors cancel.
//   - Zero denominators (a row that received no posterior mass, or a
//     sequence the model assigns zero probability) skip the affected
//     update term; the prior value survives that sweep. No division
//     fault can propagate.
//   - An all-zero support vector is a no-op: Step returns 0 and the
//     model is bit-for-bit unchanged.
//
// ⚙️ Usage:
//
//	opts, err := baumwelch.DefaultOptions(g, support)
//	if err != nil { ... }
//	for {
//	  change, err := baumwelch.Step(m, g, support, &opts)
//	  if err != nil { ... }
//	  if change < 1e-6 { break }
//	}
//
// or the bundled loop:
//
//	sweeps, err := baumwelch.Train(m, g, support, &opts, 50, 1e-6)
//
// Step mutates the model in place; do not train one *hmm.Model from two
// goroutines concurrently (single-writer discipline, see package hmm).
package baumwelch

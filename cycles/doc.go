// Package cycles classifies the cyclic structure of a functional
// transition graph: which indices lie on cycles, which strongly connected
// group (SCG) each walk eventually enters, how long the tail into that
// group is, and the least-common-multiple period over any set of starts.
//
// 🚀 Why is this easy on functional graphs?
//
//	Every node has exactly one outgoing edge, so each weakly connected
//	component is a single cycle with trees hanging off it ("rho" shape).
//	A single forward walk per unvisited index, with three-color marking,
//	classifies all n indices in O(n) total — no general SCC machinery
//	(Tarjan/Kosaraju) is needed, though the output is the same: maximal
//	mutually reachable sets that contain a cycle.
//
// ✨ Determinism:
//   - Groups are reported in discovery order (scan from index 0 upward).
//   - Indices within a group appear in traversal order starting at the
//     group's first-discovered entry index.
//   - Transient indices never appear in a group, but still receive a
//     distance (tail length) and a tour target (the exact index at which
//     their walk enters the group).
//
// ⚙️ Usage:
//
//	a, err := cycles.Analyze(g)
//	if err != nil { ... }
//	a.Groups()        // e.g. [[0 4 1] [6 5] [7]]
//	a.Distance(3)     // tail length of index 3
//	a.TourTarget(3)   // index at which 3's walk enters its group
//	a.GlobalPeriod()  // lcm of all group periods
//
// An *Analysis is immutable and safe to share across goroutines, exactly
// like the *transition.Graph it was computed from.
//
// Complexity: Analyze is O(n) time and memory; every accessor is O(1)
// except the copying ones, which are linear in their output.
package cycles

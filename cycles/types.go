// Package cycles defines the Analysis result type and sentinel errors for
// structural analysis of functional graphs.
package cycles

import "errors"

var (
	// ErrNilGraph is returned when a nil *transition.Graph is passed to
	// Analyze or any package-level convenience function.
	ErrNilGraph = errors.New("cycles: graph is nil")

	// ErrSupportLength indicates a support vector whose length differs
	// from the graph size.
	ErrSupportLength = errors.New("cycles: support length mismatch")

	// ErrNegativeWeight indicates a negative entry in a support vector.
	ErrNegativeWeight = errors.New("cycles: negative support weight")
)

// Analysis holds the complete cyclic classification of one Graph.
//
// It is purely derived data: computed once by Analyze, never mutated
// afterwards, and therefore safe for concurrent read-only use. Accessors
// taking an index fail fast (panic, like slice indexing) when the index is
// outside [0, Size()); the graph passed to Analyze already validated its
// own structure, so no recoverable error can occur here.
type Analysis struct {
	groups  [][]int // SCGs in discovery order; members in traversal order
	groupOf []int   // group id per index, -1 for transient indices
	dist    []int   // steps until the walk from i enters its SCG
	tour    []int   // exact index at which the walk from i enters its SCG
}

// Size returns the number of indices in the analyzed graph.
func (a *Analysis) Size() int { return len(a.groupOf) }

// NumGroups returns the number of strongly connected groups found.
func (a *Analysis) NumGroups() int { return len(a.groups) }

// Groups returns a deep copy of the SCGs, outer slice in discovery order,
// inner slices in traversal order from each group's entry index.
// Complexity: O(total cyclic indices).
func (a *Analysis) Groups() [][]int {
	out := make([][]int, len(a.groups))
	for gi, members := range a.groups {
		cp := make([]int, len(members))
		copy(cp, members)
		out[gi] = cp
	}

	return out
}

// GroupOf returns the group id of index i and true when i is cyclic,
// or (0, false) when i is transient.
func (a *Analysis) GroupOf(i int) (int, bool) {
	if a.groupOf[i] < 0 {
		return 0, false
	}

	return a.groupOf[i], true
}

// Period returns the cycle length of the given group (1 for a self-loop).
func (a *Analysis) Period(group int) int { return len(a.groups[group]) }

// Distance returns the tail length of index i: the number of next
// applications before the walk from i first enters its SCG (0 when i is
// itself cyclic).
func (a *Analysis) Distance(i int) int { return a.dist[i] }

// TourTarget returns the exact index at which the walk from i enters its
// SCG after Distance(i) steps (i itself when i is cyclic). Different start
// indices feeding the same group can be phase-aligned by comparing their
// tour targets.
func (a *Analysis) TourTarget(i int) int { return a.tour[i] }

// DistanceAndTour returns copies of the full distance and tour-target
// tables, both of length Size().
// Complexity: O(n).
func (a *Analysis) DistanceAndTour() (dist, tour []int) {
	dist = make([]int, len(a.dist))
	copy(dist, a.dist)
	tour = make([]int, len(a.tour))
	copy(tour, a.tour)

	return dist, tour
}

// MaxDistance returns the longest tail over all indices: the maximum
// number of steps any walk needs before entering a group. 0 for the empty
// graph.
func (a *Analysis) MaxDistance() int {
	maxD := 0
	for _, d := range a.dist {
		if d > maxD {
			maxD = d
		}
	}

	return maxD
}

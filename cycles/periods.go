// Period arithmetic over Analysis results, plus thin package-level
// conveniences that bundle Analyze with a single query. Callers issuing
// several queries against the same graph should call Analyze once and use
// the Analysis methods instead of paying the O(n) scan repeatedly.

package cycles

import (
	"fmt"

	"github.com/KommuSoft/fsmarkov/transition"
)

// GlobalPeriod returns the least common multiple of the periods of every
// group in the graph. The empty graph has no groups; the LCM over the
// empty set is 1.
// Complexity: O(#groups).
func (a *Analysis) GlobalPeriod() int {
	period := 1
	for _, members := range a.groups {
		period = lcm(period, len(members))
	}

	return period
}

// GlobalPeriodFor returns the least common multiple of the periods of the
// groups reachable from the positive-weight entries of support. Indices
// with zero weight contribute nothing; an all-zero support yields 1.
// Stage 1 (Validate): support length and non-negativity.
// Stage 2 (Collect): map each positive start through its tour target to a
// group id, deduplicating.
// Stage 3 (Reduce): fold the distinct periods through lcm.
// Complexity: O(n + #groups).
func (a *Analysis) GlobalPeriodFor(support []float64) (int, error) {
	if len(support) != len(a.groupOf) {
		return 0, fmt.Errorf("GlobalPeriodFor: len(support)=%d size=%d: %w",
			len(support), len(a.groupOf), ErrSupportLength)
	}

	reached := make([]bool, len(a.groups))
	for i, w := range support {
		if w < 0 {
			return 0, fmt.Errorf("GlobalPeriodFor: support[%d]=%g: %w", i, w, ErrNegativeWeight)
		}
		if w == 0 {
			continue
		}
		// The walk from i enters its group at tour[i], which is cyclic.
		reached[a.groupOf[a.tour[i]]] = true
	}

	period := 1
	for gid, ok := range reached {
		if ok {
			period = lcm(period, len(a.groups[gid]))
		}
	}

	return period, nil
}

// Groups analyzes g and returns its strongly connected groups in discovery
// order. See Analysis.Groups for the ordering contract.
func Groups(g *transition.Graph) ([][]int, error) {
	a, err := Analyze(g)
	if err != nil {
		return nil, err
	}

	return a.Groups(), nil
}

// MaxGroupDistance analyzes g and returns the longest tail before any
// index enters a group. Used by callers as a safety bound on walk length.
func MaxGroupDistance(g *transition.Graph) (int, error) {
	a, err := Analyze(g)
	if err != nil {
		return 0, err
	}

	return a.MaxDistance(), nil
}

// GlobalPeriod analyzes g and returns the lcm of all group periods.
func GlobalPeriod(g *transition.Graph) (int, error) {
	a, err := Analyze(g)
	if err != nil {
		return 0, err
	}

	return a.GlobalPeriod(), nil
}

// GlobalPeriodFor analyzes g and returns the lcm of the periods of the
// groups reachable from the positive entries of support.
func GlobalPeriodFor(g *transition.Graph, support []float64) (int, error) {
	a, err := Analyze(g)
	if err != nil {
		return 0, err
	}

	return a.GlobalPeriodFor(support)
}

// DistanceAndTour analyzes g and returns the per-index distance and
// tour-target tables, both of length g.Size().
func DistanceAndTour(g *transition.Graph) (dist, tour []int, err error) {
	a, err := Analyze(g)
	if err != nil {
		return nil, nil, err
	}
	dist, tour = a.DistanceAndTour()

	return dist, tour, nil
}

// gcd returns the greatest common divisor of two non-negative ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the least common multiple of two positive ints.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KommuSoft/fsmarkov/cycles"
	"github.com/KommuSoft/fsmarkov/transition"
)

// fixture returns the eight-node reference graph: groups {0,4,1} (period
// 3), {6,5} (period 2), {7} (period 1), tails 3→2→6.
func fixture(t *testing.T) *transition.Graph {
	t.Helper()
	g, err := transition.New(
		[]int{4, 0, 6, 2, 1, 6, 5, 7},
		[]int{0, 1, 0, 1, 0, 1, 0, 1},
	)
	require.NoError(t, err)

	return g
}

// TestAnalyze_NilGraph verifies the nil-graph sentinel.
func TestAnalyze_NilGraph(t *testing.T) {
	_, err := cycles.Analyze(nil)
	assert.ErrorIs(t, err, cycles.ErrNilGraph)
}

// TestAnalyze_EmptyGraph verifies n = 0 yields no groups and period 1.
func TestAnalyze_EmptyGraph(t *testing.T) {
	g, err := transition.New(nil, nil)
	require.NoError(t, err)

	a, err := cycles.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, 0, a.NumGroups())
	assert.Empty(t, a.Groups())
	assert.Equal(t, 0, a.MaxDistance())
	assert.Equal(t, 1, a.GlobalPeriod(), "lcm over no groups is 1")
}

// TestAnalyze_Groups verifies group membership, discovery order and the
// in-group traversal order on the reference graph.
func TestAnalyze_Groups(t *testing.T) {
	a, err := cycles.Analyze(fixture(t))
	require.NoError(t, err)

	// Discovery order: scanning from 0 finds the 0→4→1 cycle first, then
	// the walk from 2 discovers 6→5, then 7 closes its own self-loop.
	assert.Equal(t, [][]int{{0, 4, 1}, {6, 5}, {7}}, a.Groups())

	assert.Equal(t, 3, a.NumGroups())
	assert.Equal(t, 3, a.Period(0))
	assert.Equal(t, 2, a.Period(1))
	assert.Equal(t, 1, a.Period(2))
}

// TestAnalyze_GroupOf verifies the cyclic/transient classification.
func TestAnalyze_GroupOf(t *testing.T) {
	a, err := cycles.Analyze(fixture(t))
	require.NoError(t, err)

	for _, tc := range []struct {
		idx    int
		group  int
		cyclic bool
	}{
		{0, 0, true}, {1, 0, true}, {4, 0, true},
		{5, 1, true}, {6, 1, true},
		{7, 2, true},
		{2, 0, false}, {3, 0, false},
	} {
		gid, ok := a.GroupOf(tc.idx)
		assert.Equal(t, tc.cyclic, ok, "GroupOf(%d) cyclic flag", tc.idx)
		if tc.cyclic {
			assert.Equal(t, tc.group, gid, "GroupOf(%d)", tc.idx)
		}
	}
}

// TestAnalyze_DistanceAndTour verifies tails, tour targets and the
// consistency property: applying next Distance(i) times lands on
// TourTarget(i), which lies in a reported group.
func TestAnalyze_DistanceAndTour(t *testing.T) {
	g := fixture(t)
	a, err := cycles.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Distance(2), "2 → 6 enters in one step")
	assert.Equal(t, 6, a.TourTarget(2))
	assert.Equal(t, 2, a.Distance(3), "3 → 2 → 6 enters in two steps")
	assert.Equal(t, 6, a.TourTarget(3))
	assert.Equal(t, 2, a.MaxDistance(), "longest tail in the fixture")

	dist, tour := a.DistanceAndTour()
	require.Len(t, dist, g.Size())
	require.Len(t, tour, g.Size())
	for i := 0; i < g.Size(); i++ {
		idx := i
		for s := 0; s < dist[i]; s++ {
			idx = g.NextAt(idx)
		}
		assert.Equal(t, tour[i], idx, "walking Distance(%d) steps reaches the tour target", i)

		_, cyclic := a.GroupOf(tour[i])
		assert.True(t, cyclic, "tour target of %d lies in a group", i)
		if dist[i] == 0 {
			assert.Equal(t, i, tour[i], "cyclic index %d is its own tour target", i)
		}
	}
}

// TestAnalyze_SelfLoopSingleton verifies a fixed point is its own group of
// period 1.
func TestAnalyze_SelfLoopSingleton(t *testing.T) {
	g, err := transition.SelfLoops([]int{0, 1})
	require.NoError(t, err)

	a, err := cycles.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}}, a.Groups())
	assert.Equal(t, 1, a.GlobalPeriod())
}

// TestAnalyze_PeriodicReturn verifies that from any index, the walk
// returns to its tour target every Period steps once inside the group.
func TestAnalyze_PeriodicReturn(t *testing.T) {
	g := fixture(t)
	a, err := cycles.Analyze(g)
	require.NoError(t, err)

	for i := 0; i < g.Size(); i++ {
		entry := a.TourTarget(i)
		gid, _ := a.GroupOf(entry)
		p := a.Period(gid)

		idx := entry
		for s := 0; s < p; s++ {
			idx = g.NextAt(idx)
		}
		assert.Equal(t, entry, idx, "index %d: one full period returns to the entry point", i)
	}
}

// TestAnalyze_LongTailChain verifies distance chaining when a later walk
// feeds an already classified tail.
func TestAnalyze_LongTailChain(t *testing.T) {
	// 0→1→2→3→3 (self-loop); 4→0 reuses the classified tail.
	g, err := transition.Explicit(nil, 1, 2, 3, 3, 0)
	require.NoError(t, err)

	a, err := cycles.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3}}, a.Groups())
	assert.Equal(t, 3, a.Distance(0))
	assert.Equal(t, 4, a.Distance(4), "walk from 4 chains onto the tail of 0")
	assert.Equal(t, 3, a.TourTarget(4))
	assert.Equal(t, 4, a.MaxDistance())
}

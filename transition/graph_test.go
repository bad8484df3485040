package transition_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KommuSoft/fsmarkov/transition"
)

// fixture is the eight-node rho-shaped graph used across the module:
// cycles {0,4,1}, {6,5}, {7}; tails 2→6 and 3→2→6.
var (
	fixtureNext = []int{4, 0, 6, 2, 1, 6, 5, 7}
	fixtureOut  = []int{0, 1, 0, 1, 0, 1, 0, 1}
)

// TestNew_LengthMismatch verifies that differing table lengths are rejected.
func TestNew_LengthMismatch(t *testing.T) {
	_, err := transition.New([]int{0, 1}, []int{0})
	assert.ErrorIs(t, err, transition.ErrLengthMismatch, "length mismatch must error")
}

// TestNew_TargetOutOfRange verifies that next targets outside [0,n) are rejected.
func TestNew_TargetOutOfRange(t *testing.T) {
	_, err := transition.New([]int{0, 2}, []int{0, 0})
	assert.ErrorIs(t, err, transition.ErrTargetOutOfRange, "target 2 with n=2 must error")

	_, err = transition.New([]int{-1}, []int{0})
	assert.ErrorIs(t, err, transition.ErrTargetOutOfRange, "negative target must error")
}

// TestNew_NegativeOutput verifies that negative labels are rejected.
func TestNew_NegativeOutput(t *testing.T) {
	_, err := transition.New([]int{0}, []int{-3})
	assert.ErrorIs(t, err, transition.ErrNegativeOutput, "negative label must error")
}

// TestNew_Empty verifies that the empty graph is valid.
func TestNew_Empty(t *testing.T) {
	g, err := transition.New(nil, nil)
	require.NoError(t, err, "empty graph must construct")
	assert.Equal(t, 0, g.Size(), "empty graph has size 0")
	assert.Equal(t, 0, g.NumOutputs(), "empty graph has no alphabet")
}

// TestGraph_Accessors verifies Size, Next, Output and NumOutputs on the fixture.
func TestGraph_Accessors(t *testing.T) {
	g, err := transition.New(fixtureNext, fixtureOut)
	require.NoError(t, err)

	assert.Equal(t, 8, g.Size())
	assert.Equal(t, 2, g.NumOutputs(), "labels are {0,1}")

	for i := range fixtureNext {
		nxt, err := g.Next(i)
		require.NoError(t, err)
		assert.Equal(t, fixtureNext[i], nxt, "Next(%d)", i)
		assert.Equal(t, fixtureNext[i], g.NextAt(i), "NextAt(%d)", i)

		out, err := g.Output(i)
		require.NoError(t, err)
		assert.Equal(t, fixtureOut[i], out, "Output(%d)", i)
		assert.Equal(t, fixtureOut[i], g.OutputAt(i), "OutputAt(%d)", i)
	}
}

// TestGraph_AccessorBounds verifies ErrIndexOutOfRange on bad lookups.
func TestGraph_AccessorBounds(t *testing.T) {
	g, err := transition.New(fixtureNext, fixtureOut)
	require.NoError(t, err)

	_, err = g.Next(-1)
	assert.ErrorIs(t, err, transition.ErrIndexOutOfRange)
	_, err = g.Next(8)
	assert.ErrorIs(t, err, transition.ErrIndexOutOfRange)
	_, err = g.Output(99)
	assert.ErrorIs(t, err, transition.ErrIndexOutOfRange)
}

// TestGraph_Immutable verifies the constructor copies its input slices.
func TestGraph_Immutable(t *testing.T) {
	next := []int{1, 0}
	out := []int{0, 1}
	g, err := transition.New(next, out)
	require.NoError(t, err)

	next[0] = 0
	out[0] = 5

	nxt, _ := g.Next(0)
	assert.Equal(t, 1, nxt, "mutating the input slice must not affect the graph")
	lbl, _ := g.Output(0)
	assert.Equal(t, 0, lbl, "mutating the input slice must not affect the graph")
}

// TestGraph_Walk verifies a bounded walk emits the expected label sequence.
func TestGraph_Walk(t *testing.T) {
	g, err := transition.New(fixtureNext, fixtureOut)
	require.NoError(t, err)

	// From 2: indices 2,6,5,6,5,... → labels 0,0,1,0,1,...
	seq, err := g.Walk(2, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 0, 1, 0}, seq, "walk from 2")

	// From 7 (self-loop): constant label.
	seq, err = g.Walk(7, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, seq, "walk from 7")

	// Zero steps yields an empty, non-nil sequence.
	seq, err = g.Walk(0, 0)
	require.NoError(t, err)
	assert.Empty(t, seq)
}

// TestGraph_WalkErrors verifies Walk precondition failures.
func TestGraph_WalkErrors(t *testing.T) {
	g, err := transition.New(fixtureNext, fixtureOut)
	require.NoError(t, err)

	_, err = g.Walk(8, 3)
	assert.ErrorIs(t, err, transition.ErrIndexOutOfRange, "bad start index")

	_, err = g.Walk(0, -1)
	assert.ErrorIs(t, err, transition.ErrNegativeSteps, "negative steps")
}

// TestGraph_String verifies the table dump mentions every index.
func TestGraph_String(t *testing.T) {
	g, err := transition.New([]int{1, 0}, []int{0, 1})
	require.NoError(t, err)

	s := g.String()
	assert.True(t, strings.HasPrefix(s, "FunctionalGraph(n=2)"), "header")
	assert.Contains(t, s, "idx", "column header present")
}

package floyd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floydcycle/floyd"
)

// nexts builds a graph of single-successor nodes.
func nexts(succ ...int) floyd.Graph {
	g := make(floyd.Graph, len(succ))
	for i, s := range succ {
		g[i] = floyd.Next(s)
	}

	return g
}

// TestFloyd_SimpleCycle covers 0→1→2→3→0 from start 0.
func TestFloyd_SimpleCycle(t *testing.T) {
	g := nexts(1, 2, 3, 0)

	c, ok := floyd.Floyd(g, 0)
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 0, StepsFromStart: 0, Length: 4}, c)
}

// TestFloyd_FiveCycle mirrors the number-only path [1,2,3,4,0].
func TestFloyd_FiveCycle(t *testing.T) {
	c, ok := floyd.Floyd(nexts(1, 2, 3, 4, 0), 0)
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 0, StepsFromStart: 0, Length: 5}, c)
}

// TestFloyd_AcyclicChain ensures a dead-end chain yields no cycle from any start.
func TestFloyd_AcyclicChain(t *testing.T) {
	// 0 → 1 → 2 → 3 → (nothing)
	g := floyd.Graph{floyd.Next(1), floyd.Next(2), floyd.Next(3), floyd.List()}

	for start := range g {
		_, ok := floyd.Floyd(g, start)
		assert.False(t, ok, "start %d", start)
	}
}

// TestFloyd_TailThenCycle covers 0→1→2→3→1.
func TestFloyd_TailThenCycle(t *testing.T) {
	g := nexts(1, 2, 3, 1)

	c, ok := floyd.Floyd(g, 0)
	require.True(t, ok)
	assert.Equal(t, 1, c.FirstIndex)
	assert.Equal(t, 1, c.StepsFromStart)
	assert.Equal(t, 3, c.Length)
}

// TestFloyd_LongTail checks μ on a longer tail into a 2-cycle.
func TestFloyd_LongTail(t *testing.T) {
	// 0→1→2→3→4→5→4
	g := nexts(1, 2, 3, 4, 5, 4)

	c, ok := floyd.Floyd(g, 0)
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 4, StepsFromStart: 4, Length: 2}, c)

	c, ok = floyd.Floyd(g, 2)
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 4, StepsFromStart: 2, Length: 2}, c)
}

// TestFloyd_SelfLoop verifies a node pointing at itself is a 1-cycle.
func TestFloyd_SelfLoop(t *testing.T) {
	for _, n := range []floyd.Node{floyd.Next(0), floyd.List(0), floyd.Out(0)} {
		c, ok := floyd.Floyd(floyd.Graph{n}, 0)
		require.True(t, ok, n.Kind().String())
		assert.Equal(t, floyd.Cycle{FirstIndex: 0, StepsFromStart: 0, Length: 1}, c)
	}
}

// TestFloyd_FanOut covers the list-shaped sample [[1,3],[2],[3],[1]].
func TestFloyd_FanOut(t *testing.T) {
	g := floyd.Graph{floyd.List(1, 3), floyd.List(2), floyd.List(3), floyd.List(1)}

	c, ok := floyd.Floyd(g, 0)
	require.True(t, ok)
	// After one step the tortoise holds {1,3} and the hare {3,2}: they meet on 3.
	assert.Equal(t, floyd.Cycle{FirstIndex: 3, StepsFromStart: 1, Length: 3}, c)
}

// TestFloyd_NonZeroStart makes sure μ counts steps, not indices.
func TestFloyd_NonZeroStart(t *testing.T) {
	// 0→1→2→3→2 ; start at 1: one step to the 2-cycle.
	g := nexts(1, 2, 3, 2)

	c, ok := floyd.Floyd(g, 1)
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 2, StepsFromStart: 1, Length: 2}, c)
}

// TestFloyd_EmptyRecord checks that records without an out field are dead ends.
func TestFloyd_EmptyRecord(t *testing.T) {
	g := floyd.Graph{floyd.Out(1), {}}

	_, ok := floyd.Floyd(g, 0)
	assert.False(t, ok)
}

// TestFloyd_CustomOutField resolves successors through a renamed field.
func TestFloyd_CustomOutField(t *testing.T) {
	g := floyd.Graph{
		floyd.Record(map[string][]int{"next": {1}, "out": {0}}),
		floyd.Record(map[string][]int{"next": {0}}),
	}

	c, ok := floyd.Floyd(g, 0, floyd.WithOutEdgeField("next"))
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 0, StepsFromStart: 0, Length: 2}, c)

	// Under the default field, node 0 is a self-loop and node 1 a dead end.
	_, ok = floyd.Floyd(g, 1)
	assert.False(t, ok)
	c, ok = floyd.Floyd(g, 0)
	require.True(t, ok)
	assert.Equal(t, 1, c.Length)
}

// TestFloyd_ExcludeIndices stops the race before it reaches an excluded node.
func TestFloyd_ExcludeIndices(t *testing.T) {
	g := nexts(1, 2, 3, 1)

	_, ok := floyd.Floyd(g, 0, floyd.WithExcludeIndices(1))
	assert.False(t, ok)

	// Excluding a node off the path changes nothing.
	c, ok := floyd.Floyd(g, 0, floyd.WithExcludeIndices(0))
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 1, StepsFromStart: 1, Length: 3}, c)
}

// TestFloyd_MisleadingMeet covers a fan-out graph where phase one meets on a
// dead end while the only cycle runs out of phase with it.
func TestFloyd_MisleadingMeet(t *testing.T) {
	// s=0 → a=1 → x=2 (dead end)
	// s=0 → b=3 → c=4 → d=5 → x=2
	// s=0 → e=6 → f=7 → g=8 → e=6
	g := floyd.Graph{
		floyd.List(1, 3, 6),
		floyd.List(2),
		floyd.List(),
		floyd.List(4),
		floyd.List(5),
		floyd.List(2),
		floyd.List(7),
		floyd.List(8),
		floyd.List(6),
	}

	// Must terminate. The race from 0 settles on no cycle.
	_, ok := floyd.Floyd(g, 0)
	assert.False(t, ok)

	// Starting on the cycle itself finds it.
	c, ok := floyd.Floyd(g, 6)
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 6, StepsFromStart: 0, Length: 3}, c)
}

// TestFloyd_DoesNotMutate verifies the caller's graph is unchanged even with normalization.
func TestFloyd_DoesNotMutate(t *testing.T) {
	g := floyd.Graph{
		floyd.Record(map[string][]int{"in": {1}}),
		floyd.Record(map[string][]int{"in": {0}}),
	}

	c, ok := floyd.Floyd(g, 0, floyd.WithNormalizePath(true))
	require.True(t, ok)
	assert.Equal(t, floyd.Cycle{FirstIndex: 0, StepsFromStart: 0, Length: 2}, c)

	assert.Equal(t, []int{1}, g[0].Field("in"))
	assert.False(t, g[0].HasField("out"))
	assert.Equal(t, []int{0}, g[1].Field("in"))
	assert.False(t, g[1].HasField("out"))
}

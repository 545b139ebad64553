package floyd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floydcycle/floyd"
)

// TestFromKeyed_Deterministic checks sorted labels and target-only nodes.
func TestFromKeyed_Deterministic(t *testing.T) {
	adj := map[string][]string{
		"b": {"c", "a"},
		"a": {"b"},
		"c": {"z"},
	}

	g, labels := floyd.FromKeyed(adj)
	require.Equal(t, []string{"a", "b", "c", "z"}, labels)
	assert.Equal(t, []int{1}, g[0].Successors(""))
	assert.Equal(t, []int{2, 0}, g[1].Successors(""))
	assert.Equal(t, []int{3}, g[2].Successors(""))
	assert.Empty(t, g[3].Successors(""))

	for i := 0; i < 5; i++ {
		again, l := floyd.FromKeyed(adj)
		assert.Equal(t, g, again)
		assert.Equal(t, labels, l)
	}
}

// TestLabelCycles resolves entry indices back to labels.
func TestLabelCycles(t *testing.T) {
	g, labels := floyd.FromKeyed(map[string][]string{"x": {"y"}, "y": {"x"}, "w": {"x"}})
	out := floyd.LabelCycles(floyd.DetectCycles(g), labels)

	require.Len(t, out, 1)
	// w sorts first and reaches the 2-cycle after one step.
	assert.Equal(t, "x", out[0].FirstLabel)
	assert.Equal(t, 1, out[0].StepsFromStart)
	assert.Equal(t, 2, out[0].Length)

	assert.Equal(t, "", floyd.LabelCycles([]floyd.Cycle{{FirstIndex: 9, Length: 1}}, labels)[0].FirstLabel)
}

package floyd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/floydcycle/floyd"
)

func TestValidate(t *testing.T) {
	ok := floyd.Graph{floyd.Next(1), floyd.List(0), floyd.Record(map[string][]int{"in": {0}})}
	assert.NoError(t, floyd.Validate(ok))
	assert.NoError(t, floyd.Validate(nil))

	cases := map[string]struct {
		g    floyd.Graph
		opts []floyd.Option
	}{
		"next":     {g: floyd.Graph{floyd.Next(1)}},
		"negative": {g: floyd.Graph{floyd.List(-1)}},
		"out":      {g: floyd.Graph{floyd.Out(0, 4)}},
		"in":       {g: floyd.Graph{floyd.Record(map[string][]int{"in": {2}})}},
		"renamed":  {g: floyd.Graph{floyd.Record(map[string][]int{"to": {3}})}, opts: []floyd.Option{floyd.WithOutEdgeField("to")}},
		"excluded": {g: floyd.Graph{floyd.Next(0)}, opts: []floyd.Option{floyd.WithExcludeIndices(1)}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, floyd.Validate(tc.g, tc.opts...), floyd.ErrIndexOutOfRange)
		})
	}
}

func TestValidateStart(t *testing.T) {
	g := floyd.Graph{floyd.Next(0)}
	assert.NoError(t, floyd.ValidateStart(g, 0))
	assert.ErrorIs(t, floyd.ValidateStart(g, 1), floyd.ErrIndexOutOfRange)
	assert.ErrorIs(t, floyd.ValidateStart(g, -1), floyd.ErrIndexOutOfRange)
	assert.ErrorIs(t, floyd.ValidateStart(nil, 0), floyd.ErrIndexOutOfRange)
}

// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// predecessors.go — rewrite an out-edge graph into in-edge-only records.

package builder

import "github.com/katalvlaran/floydcycle/floyd"

// Predecessors returns a graph with the same edges as g, declared from the
// receiving side: node i becomes a record whose inField lists every p with
// an edge p → i, in ascending p order. No out-edges remain, so the result is
// only traversable after floyd.NormalizePath with the same field names.
//
// outField resolves record successors of g; empty names mean the defaults.
func Predecessors(g floyd.Graph, outField, inField string) floyd.Graph {
	if outField == "" {
		outField = floyd.DefaultOutEdgeField
	}
	if inField == "" {
		inField = floyd.DefaultInEdgeField
	}

	preds := make([][]int, len(g))
	for p, n := range g {
		for _, s := range n.Successors(outField) {
			preds[s] = append(preds[s], p)
		}
	}

	out := make(floyd.Graph, len(g))
	for i := range out {
		out[i] = floyd.Record(map[string][]int{inField: preds[i]})
	}

	return out
}

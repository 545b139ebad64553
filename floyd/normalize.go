package floyd

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NormalizePath turns in-edges into out-edges.
//
// For every node i and every predecessor p listed in i's in-edge field,
// i is added (set union) to the successors of node p. Afterwards no node
// carries an in-edge field. The input graph is left untouched: the result is
// a new slice and every record node is copied before it is written.
//
// A predecessor p that is a Next or List node becomes a List node holding
// the union of its old successors and the new ones.
//
// Complexity: O(V + E).
func NormalizePath(g Graph, opts ...Option) Graph {
	o := buildOptions(opts)

	return normalize(g, o.OutEdgeField, o.InEdgeField)
}

func normalize(g Graph, outField, inField string) Graph {
	// 1) Shallow copy of the sequence; record maps are copied lazily below.
	out := make(Graph, len(g))
	copy(out, g)
	owned := make([]bool, len(g))

	// own makes out[i] safe to write without touching the caller's node.
	own := func(i int) {
		if owned[i] {
			return
		}
		owned[i] = true
		n := out[i]
		switch n.kind {
		case KindNext:
			out[i] = List(n.next)
		case KindList:
			out[i] = List(slices.Clone(n.list)...)
		default:
			f := maps.Clone(n.fields)
			if f == nil {
				f = map[string][]int{}
			}
			out[i] = Record(f)
		}
	}

	// 2) Invert every in-edge p→i into an out-edge on p.
	for i, n := range g {
		for _, p := range n.Field(inField) {
			own(p)
			addSuccessor(&out[p], outField, i)
		}
	}

	// 3) Drop every in-edge field.
	for i := range out {
		if out[i].HasField(inField) {
			own(i)
			delete(out[i].fields, inField)
		}
	}

	return out
}

// addSuccessor unions i into the successors of an owned node.
func addSuccessor(n *Node, outField string, i int) {
	switch n.kind {
	case KindList:
		if !slices.Contains(n.list, i) {
			n.list = append(n.list, i)
		}
	case KindRecord:
		cur := n.fields[outField]
		if !slices.Contains(cur, i) {
			n.fields[outField] = append(slices.Clone(cur), i)
		}
	}
}

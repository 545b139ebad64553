package floyd

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FromKeyed converts a label-keyed adjacency map into an indexed Graph.
//
// Labels are the union of the map keys and every target, sorted, so the
// result is deterministic. Node i is a List of the indices of its targets in
// the order given; labels that only appear as targets get an empty list.
// The returned labels slice maps an index back to its label.
func FromKeyed(adj map[string][]string) (Graph, []string) {
	// 1) Collect every label exactly once.
	set := make(map[string]struct{}, len(adj))
	for from, tos := range adj {
		set[from] = struct{}{}
		for _, to := range tos {
			set[to] = struct{}{}
		}
	}
	labels := maps.Keys(set)
	slices.Sort(labels)

	// 2) Index them.
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	// 3) Translate adjacency.
	g := make(Graph, len(labels))
	for i, l := range labels {
		tos := adj[l]
		succ := make([]int, 0, len(tos))
		for _, to := range tos {
			succ = append(succ, index[to])
		}
		g[i] = List(succ...)
	}

	return g, labels
}

// Labeled is a Cycle whose FirstIndex is resolved to a label.
type Labeled struct {
	Cycle
	FirstLabel string `json:"firstLabel"`
}

// LabelCycles attaches labels (as returned by FromKeyed) to cycles.
// Entries without a matching label keep an empty FirstLabel.
func LabelCycles(cycles []Cycle, labels []string) []Labeled {
	out := make([]Labeled, len(cycles))
	for i, c := range cycles {
		out[i].Cycle = c
		if c.FirstIndex >= 0 && c.FirstIndex < len(labels) {
			out[i].FirstLabel = labels[c.FirstIndex]
		}
	}

	return out
}

package floyd

import "golang.org/x/exp/slices"

// DetectCycles runs Floyd from every index of g in ascending order and
// collects the cycles found, in start order.
//
// The exclusion set starts as the configured ExcludeIndices and grows by the
// entry index of every cycle found, so a later start that walks into a known
// entry stops there instead of reporting the cycle again. Only entry indices
// are excluded: a start whose path reaches a known cycle through one of its
// other members can still report that cycle a second time, with a different
// entry.
//
// Normalization, when requested, is applied once before the first start.
// Calling DetectCycles twice on the same graph yields the same result.
func DetectCycles(g Graph, opts ...Option) []Cycle {
	o := buildOptions(opts)
	if o.NormalizePath {
		g = normalize(g, o.OutEdgeField, o.InEdgeField)
	}

	excluded := slices.Clone(o.ExcludeIndices)
	var cycles []Cycle
	for start := range g {
		s := NewStepper(g, o.OutEdgeField, excluded)
		c, ok := find(s, len(g), start)
		if !ok {
			continue
		}
		cycles = append(cycles, c)
		excluded = append(excluded, c.FirstIndex)
	}

	return cycles
}

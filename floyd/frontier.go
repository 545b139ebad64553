package floyd

// Frontier is a deduplicated set of node indices.
// Insertion order is kept so that tie-breaks over a frontier are stable.
type Frontier []int

// Contains reports whether i is a member of f.
func (f Frontier) Contains(i int) bool {
	for _, x := range f {
		if x == i {
			return true
		}
	}

	return false
}

// Intersect returns the members of f that are also in other, in f's order.
func (f Frontier) Intersect(other Frontier) Frontier {
	if len(f) == 0 || len(other) == 0 {
		return nil
	}
	in := make(map[int]struct{}, len(other))
	for _, x := range other {
		in[x] = struct{}{}
	}
	var out Frontier
	for _, x := range f {
		if _, ok := in[x]; ok {
			out = append(out, x)
		}
	}

	return out
}

// Meets reports whether f and other share at least one index.
func (f Frontier) Meets(other Frontier) bool {
	return len(f.Intersect(other)) > 0
}

// Stepper computes successor frontiers over one graph.
// It is immutable after construction and safe for concurrent use.
type Stepper struct {
	g        Graph
	outField string
	excluded map[int]struct{}
}

// NewStepper returns a Stepper over g that resolves record successors via
// outField and never emits an index listed in exclude.
func NewStepper(g Graph, outField string, exclude []int) *Stepper {
	if outField == "" {
		outField = DefaultOutEdgeField
	}
	ex := make(map[int]struct{}, len(exclude))
	for _, i := range exclude {
		ex[i] = struct{}{}
	}

	return &Stepper{g: g, outField: outField, excluded: ex}
}

// Next returns the frontier reachable from f in exactly one step:
// all successors of every member of f, deduplicated, minus the exclusion set.
// Indices without successors contribute nothing.
func (s *Stepper) Next(f Frontier) Frontier {
	// 1) Gather every successor in frontier order.
	var all []int
	for _, i := range f {
		all = append(all, s.g[i].Successors(s.outField)...)
	}

	// 2) Deduplicate, then 3) drop excluded indices.
	return exclude(dedupe(all), s.excluded)
}

// NextN applies Next k times.
func (s *Stepper) NextN(f Frontier, k int) Frontier {
	for ; k > 0; k-- {
		f = s.Next(f)
	}

	return f
}

// dedupe keeps the first occurrence of every index.
func dedupe(idx []int) Frontier {
	if len(idx) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(idx))
	out := make(Frontier, 0, len(idx))
	for _, i := range idx {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}

	return out
}

// exclude removes every member of ex from f, in place.
func exclude(f Frontier, ex map[int]struct{}) Frontier {
	if len(ex) == 0 || len(f) == 0 {
		return f
	}
	out := f[:0]
	for _, i := range f {
		if _, skip := ex[i]; !skip {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

package floyd

// DFS visitation colors.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // fully explored, reaches no cycle
)

// ReachesCycle reports whether any cycle is reachable from start, using a
// three-color depth-first search over the same successor sets (and the same
// exclusions) Floyd steps through.
//
// It agrees with Floyd when every node has at most one successor. On fan-out
// graphs the frontier race can miss a reachable cycle or settle on nodes that
// lie on none; ReachesCycle is exact there. Indices are not validated; see
// Validate.
//
// Complexity: O(V + E) time, O(V) memory.
func ReachesCycle(g Graph, start int, opts ...Option) bool {
	o := buildOptions(opts)
	if o.NormalizePath {
		g = normalize(g, o.OutEdgeField, o.InEdgeField)
	}
	if start < 0 || start >= len(g) {
		return false
	}

	// 1) Excluded indices behave as if they had no incoming edges.
	s := NewStepper(g, o.OutEdgeField, o.ExcludeIndices)
	state := make([]uint8, len(g))

	return s.visit(start, state)
}

// visit returns true as soon as a back-edge (gray → gray) is found.
func (s *Stepper) visit(i int, state []uint8) bool {
	// 1) Enter: mark gray.
	state[i] = gray

	// 2) Explore every successor the step function would emit.
	for _, nbr := range s.Next(Frontier{i}) {
		switch state[nbr] {
		case gray:
			return true
		case white:
			if s.visit(nbr, state) {
				return true
			}
		}
	}

	// 3) Leave: nothing below i closes a loop.
	state[i] = black

	return false
}

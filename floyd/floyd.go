package floyd

// Floyd races a tortoise frontier against a hare frontier from start and
// returns the first cycle it settles on.
// It returns (Cycle{}, false) when no cycle is reachable from start, and
// when start is not an index of g (so the conventional start 0 is safe on
// an empty graph). Successor indices are not validated; see Validate.
//
// Phases:
//
//  1. Meet: tortoise = N(start), hare = N²(start). Until they share an index,
//     step the tortoise once and the hare twice. An empty tortoise means every
//     forward path from start dead-ends: no cycle.
//  2. Entry: restart the tortoise at {start}; step both once per round until
//     they meet. The round count is μ and the meeting set E = tortoise ∩ hare
//     is the entry frontier.
//  3. Length: step a leading frontier from N(E) until it touches E again.
//     The step count is λ.
//
// Both pointers are sets, so nodes with many successors advance every
// branch together. When E holds several indices, FirstIndex is the first of
// them in tortoise order and λ is the shortest walk from any member of E
// back into E. On fan-out graphs that walk need not be a loop through
// FirstIndex, and a race can settle on a set of nodes that lie on no cycle;
// ReachesCycle gives the exact answer.
//
// Phase 2 gives up when a frontier empties or μ exceeds (n+1)², and phase 3
// when λ reaches n without meeting. Both only happen where the race would
// otherwise never settle: a shortest walk from E back into E is at most n.
func Floyd(g Graph, start int, opts ...Option) (Cycle, bool) {
	o := buildOptions(opts)
	if o.NormalizePath {
		g = normalize(g, o.OutEdgeField, o.InEdgeField)
	}

	if start < 0 || start >= len(g) {
		return Cycle{}, false
	}

	return find(NewStepper(g, o.OutEdgeField, o.ExcludeIndices), len(g), start)
}

// find runs the three phases over a prepared stepper.
func find(s *Stepper, n, start int) (Cycle, bool) {
	origin := Frontier{start}

	// Phase 1: get both pointers into a cycle.
	tortoise := s.Next(origin)
	hare := s.NextN(origin, 2)
	for !tortoise.Meets(hare) {
		if len(tortoise) == 0 {
			return Cycle{}, false
		}
		tortoise = s.Next(tortoise)
		hare = s.NextN(hare, 2)
	}

	// Phase 2: equal speed from start and from the meeting point.
	mu := 0
	maxMu := (n + 1) * (n + 1)
	tortoise = origin
	for !tortoise.Meets(hare) {
		tortoise = s.Next(tortoise)
		hare = s.Next(hare)
		mu++
		if len(tortoise) == 0 || len(hare) == 0 || mu > maxMu {
			return Cycle{}, false
		}
	}

	// Phase 3: walk around until the leading frontier is back in the entry set.
	entry := tortoise.Intersect(hare)
	lambda := 1
	lead := s.Next(entry)
	for !entry.Meets(lead) {
		if lambda >= n {
			return Cycle{}, false
		}
		lead = s.Next(lead)
		lambda++
	}

	return Cycle{
		FirstIndex:     entry[0],
		StepsFromStart: mu,
		Length:         lambda,
	}, true
}

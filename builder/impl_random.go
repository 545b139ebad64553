// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// impl_random.go — RandomFunctional(n) and RandomFanOut(n, k) constructors.
//
// Contract:
//   • Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • RandomFunctional: n ≥ 1; every node gets exactly one uniformly chosen
//     successor inside the component. Every start therefore reaches a cycle.
//   • RandomFanOut: n ≥ 1, k ≥ 0; every node gets k successors drawn with
//     replacement inside the component (duplicates are kept).
//
// Determinism: fixed seed ⇒ identical graph.

package builder

import "github.com/katalvlaran/floydcycle/floyd"

const (
	methodRandomFunctional = "RandomFunctional"
	methodRandomFanOut     = "RandomFanOut"
)

// RandomFunctional returns a Constructor that appends a random functional graph.
func RandomFunctional(n int) Constructor {
	return func(g *floyd.Graph, cfg builderConfig) error {
		if n < 1 {
			return wrapf(methodRandomFunctional, "n=%d < min=1", ErrTooFewVertices, n)
		}
		if cfg.rng == nil {
			return wrapf(methodRandomFunctional, "rng is nil", ErrNeedRandSource)
		}
		base := len(*g)
		for i := 0; i < n; i++ {
			*g = append(*g, cfg.node(base+cfg.rng.Intn(n)))
		}

		return nil
	}
}

// RandomFanOut returns a Constructor that appends n nodes with k random successors each.
func RandomFanOut(n, k int) Constructor {
	return func(g *floyd.Graph, cfg builderConfig) error {
		if n < 1 {
			return wrapf(methodRandomFanOut, "n=%d < min=1", ErrTooFewVertices, n)
		}
		if k < 0 {
			return wrapf(methodRandomFanOut, "k=%d < 0", ErrTooFewVertices, k)
		}
		if cfg.rng == nil {
			return wrapf(methodRandomFanOut, "rng is nil", ErrNeedRandSource)
		}
		base := len(*g)
		for i := 0; i < n; i++ {
			succ := make([]int, k)
			for j := range succ {
				succ[j] = base + cfg.rng.Intn(n)
			}
			*g = append(*g, cfg.node(succ...))
		}

		return nil
	}
}

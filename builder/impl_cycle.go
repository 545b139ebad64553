// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// impl_cycle.go — Cycle(n) and SelfLoop() constructors.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); n == 1 is a self-loop.
//   • Emits base+i → base+(i+1)%n for i=0..n-1, base = len(g).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/floydcycle/floyd"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor that appends an n-node directed ring.
func Cycle(n int) Constructor {
	return func(g *floyd.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return wrapf(methodCycle, "n=%d < min=%d", ErrTooFewVertices, n, minCycleNodes)
		}
		base := len(*g)
		for i := 0; i < n; i++ {
			*g = append(*g, cfg.node(base+(i+1)%n))
		}

		return nil
	}
}

// SelfLoop returns a Constructor that appends one node pointing at itself.
func SelfLoop() Constructor {
	return Cycle(1)
}

// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// impl_path.go — Path(n) and Lasso(tail, loop) constructors.
//
// Contract:
//   • Path: n ≥ 1; emits base+i → base+i+1 and ends in a node with no successors.
//   • Lasso: tail ≥ 0, loop ≥ 1; a tail of `tail` nodes feeds a ring of
//     `loop` nodes whose entry is base+tail. From base, Floyd reports
//     {FirstIndex: base+tail, StepsFromStart: tail, Length: loop}.
//
// Complexity: O(n) time.

package builder

import "github.com/katalvlaran/floydcycle/floyd"

const (
	methodPath  = "Path"
	methodLasso = "Lasso"

	minPathNodes = 1
	minLoopNodes = 1
)

// Path returns a Constructor that appends an acyclic chain of n nodes.
func Path(n int) Constructor {
	return func(g *floyd.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return wrapf(methodPath, "n=%d < min=%d", ErrTooFewVertices, n, minPathNodes)
		}
		base := len(*g)
		for i := 0; i < n-1; i++ {
			*g = append(*g, cfg.node(base+i+1))
		}
		// Dead end: no successors in any shape.
		*g = append(*g, cfg.node())

		return nil
	}
}

// Lasso returns a Constructor that appends a tail leading into a ring.
func Lasso(tail, loop int) Constructor {
	return func(g *floyd.Graph, cfg builderConfig) error {
		if tail < 0 {
			return wrapf(methodLasso, "tail=%d < 0", ErrTooFewVertices, tail)
		}
		if loop < minLoopNodes {
			return wrapf(methodLasso, "loop=%d < min=%d", ErrTooFewVertices, loop, minLoopNodes)
		}
		base := len(*g)
		entry := base + tail
		for i := 0; i < tail; i++ {
			*g = append(*g, cfg.node(base+i+1))
		}
		for i := 0; i < loop; i++ {
			*g = append(*g, cfg.node(entry+(i+1)%loop))
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor APPENDS a component to the graph; indices it emits are
//     offset by the graph length at the time it runs. Composing constructors
//     therefore yields disjoint components in call order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/floydcycle/floyd"
)

// Constructor appends one deterministic component to g using cfg.
// Constructors validate their parameters first and return sentinel errors;
// they never panic.
type Constructor func(g *floyd.Graph, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order to an empty graph. Constructor errors are wrapped
// with "BuildGraph: %w"; callers branch with errors.Is against the sentinels.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (floyd.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	g := floyd.Graph{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures whose parameters are known good.
// It panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) floyd.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • shape    = ShapeAuto (Next for one successor, List otherwise)
//   • outField = "out"
//   • rng      = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/floydcycle/floyd"
)

// Shape selects how constructors encode a node's successors.
type Shape int

const (
	// ShapeAuto emits Next for exactly one successor and List otherwise.
	ShapeAuto Shape = iota
	// ShapeList always emits List nodes.
	ShapeList
	// ShapeRecord emits record nodes carrying only the out-edge field.
	ShapeRecord
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	shape    Shape
	outField string
	rng      *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		shape:    ShapeAuto,
		outField: floyd.DefaultOutEdgeField,
		rng:      nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.outField == "" {
		cfg.outField = floyd.DefaultOutEdgeField
	}

	return cfg
}

// node encodes succ in the configured shape.
func (c builderConfig) node(succ ...int) floyd.Node {
	switch c.shape {
	case ShapeList:
		return floyd.List(succ...)
	case ShapeRecord:
		return floyd.Record(map[string][]int{c.outField: succ})
	default:
		if len(succ) == 1 {
			return floyd.Next(succ[0])
		}

		return floyd.List(succ...)
	}
}

// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithShape selects the node encoding used by every constructor.
func WithShape(s Shape) BuilderOption {
	if s < ShapeAuto || s > ShapeRecord {
		panic("builder: WithShape(unknown)")
	}
	return func(c *builderConfig) {
		c.shape = s
	}
}

// WithOutField names the out-edge field written by ShapeRecord.
// An empty name falls back to the default "out".
func WithOutField(name string) BuilderOption {
	return func(c *builderConfig) {
		c.outField = name
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

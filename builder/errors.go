// SPDX-License-Identifier: MIT
// Package: floydcycle/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates construction could not proceed
// (e.g. a nil constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes err with the method name and a formatted detail.
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

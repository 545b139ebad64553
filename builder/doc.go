// Package builder provides deterministic “functional‐options”‐style fixture
// constructors for floyd.Graph. Each constructor appends one component whose
// indices start after the nodes already present, so composing constructors
// in BuildGraph yields disjoint components in call order.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolves options and runs constructors in order.
//     – MustBuild:         BuildGraph that panics, for known-good fixtures.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithShape:         ShapeAuto (Next/List), ShapeList, ShapeRecord.
//     – WithOutField:      record field written by ShapeRecord.
//     – WithSeed, WithRand: RNG for the random constructors.
//   - Constructors:
//     – Cycle(n), SelfLoop(): rings with entry at the first index.
//     – Path(n):           acyclic chain ending in a node without successors.
//     – Lasso(tail, loop): a tail feeding a ring; entry at base+tail.
//     – RandomFunctional(n): one random successor per node.
//     – RandomFanOut(n, k): k random successors per node.
//   - Transforms:
//     – Predecessors:      rewrites a graph into in-edge-only records.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (ErrTooFewVertices, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the constructor name.
package builder

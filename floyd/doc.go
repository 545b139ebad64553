// Package floyd implements generalized Floyd cycle detection ("tortoise and
// hare") over an indexed graph whose nodes may have zero, one or many
// successors.
//
// What:
//
//   - Floyd: runs a three-phase frontier race from one start index and
//     reports the cycle entry index, the number of steps from the start to
//     the entry (μ) and the cycle length (λ).
//   - DetectCycles: runs Floyd from every index in ascending order, excluding
//     the entry indices of cycles already found, so disconnected subgraphs are
//     covered without reporting the same cycle twice.
//   - NormalizePath: rewrites predecessor ("in") edges into successor ("out")
//     edges so that traversal only needs out-edges.
//   - Stepper: the frontier step function shared by all of the above.
//   - ReachesCycle: exact depth-first answer to "is any cycle reachable",
//     for fan-out graphs where the frontier race can settle on nothing.
//
// Why:
//
//   - Linked structures with fan-out (pointer graphs, redirect chains, state
//     machines) where the classical single-pointer Floyd does not apply.
//   - Cheap "is there a loop reachable from here" checks without building an
//     adjacency index or recursion stack.
//
// Graph model:
//
// A Graph is a []Node. The index of a Node is its identity. A Node is one of
// three shapes:
//
//	Next(3)                       // exactly one successor: 3
//	List(1, 4)                    // successors 1 and 4
//	Record({"out": [2], "in": [0]}) // named out/in edge lists
//
// Field names for record nodes are configurable (WithOutEdgeField,
// WithInEdgeField). In-edges are only honored after normalization
// (WithNormalizePath or NormalizePath).
//
// Frontiers are sets of indices. Both pointers of the race are frontiers,
// so a node with several successors advances every branch at once.
//
// Complexity:
//
//   - Stepper.Next: O(Σ out-degree of frontier)
//   - Floyd:        O(S · E) worst case, S = steps until the race settles
//   - DetectCycles: n runs of Floyd
//   - NormalizePath: O(V + E)
//   - ReachesCycle:  O(V + E)
//
// Errors:
//
// The algorithmic path never fails: absence of a cycle is a (Cycle{}, false)
// result. Indices are not checked by the engine; out-of-range successors are
// a caller contract violation. Validate reports them up front:
//
//   - ErrIndexOutOfRange  successor, in-edge, start or excluded index not in [0, n)
//   - ErrInvalidNode      JSON value is not a number, array, object or null
//   - ErrEmptyGraph       DecodeGraph got no input
package floyd

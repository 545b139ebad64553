package floyd

import "fmt"

// Validate checks that every index g refers to is in [0, len(g)):
// successors of every node (resolved through the configured out field),
// every in-edge, and every excluded index.
// The first violation is returned wrapped around ErrIndexOutOfRange.
func Validate(g Graph, opts ...Option) error {
	o := buildOptions(opts)
	n := len(g)

	for i, node := range g {
		for _, s := range node.Successors(o.OutEdgeField) {
			if s < 0 || s >= n {
				return fmt.Errorf("node %d: successor %d: %w", i, s, ErrIndexOutOfRange)
			}
		}
		for _, p := range node.Field(o.InEdgeField) {
			if p < 0 || p >= n {
				return fmt.Errorf("node %d: %s-edge %d: %w", i, o.InEdgeField, p, ErrIndexOutOfRange)
			}
		}
	}
	for _, x := range o.ExcludeIndices {
		if x < 0 || x >= n {
			return fmt.Errorf("excluded index %d: %w", x, ErrIndexOutOfRange)
		}
	}

	return nil
}

// ValidateStart reports whether start addresses a node of g.
func ValidateStart(g Graph, start int) error {
	if start < 0 || start >= len(g) {
		return fmt.Errorf("start %d (graph has %d nodes): %w", start, len(g), ErrIndexOutOfRange)
	}

	return nil
}

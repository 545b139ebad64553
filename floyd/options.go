package floyd

import "golang.org/x/exp/slices"

// Default record field names.
const (
	DefaultOutEdgeField = "out"
	DefaultInEdgeField  = "in"
)

// Option configures Floyd, DetectCycles and NormalizePath.
type Option func(*Options)

// Options holds the complete configuration of one call.
// It is built fresh from DefaultOptions on every call; there is no
// package-level mutable state.
type Options struct {
	// OutEdgeField names the successor list of record nodes. Default "out".
	OutEdgeField string `json:"outEdgeField,omitempty"`

	// InEdgeField names the predecessor list of record nodes. Default "in".
	// In-edges are only read by NormalizePath.
	InEdgeField string `json:"inEdgeField,omitempty"`

	// NormalizePath, if true, makes Floyd and DetectCycles run NormalizePath
	// on the graph before detection, using the same field names.
	NormalizePath bool `json:"normalizePath,omitempty"`

	// ExcludeIndices are never emitted by the frontier step function.
	// DetectCycles extends this set with the entry index of every cycle it finds.
	ExcludeIndices []int `json:"excludeIndices,omitempty"`
}

// DefaultOptions returns Options with:
//   - OutEdgeField = "out"
//   - InEdgeField  = "in"
//   - no normalization
//   - no excluded indices
func DefaultOptions() Options {
	return Options{
		OutEdgeField:   DefaultOutEdgeField,
		InEdgeField:    DefaultInEdgeField,
		NormalizePath:  false,
		ExcludeIndices: nil,
	}
}

// WithOutEdgeField sets the out-edge field name. An empty name is ignored.
func WithOutEdgeField(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.OutEdgeField = name
		}
	}
}

// WithInEdgeField sets the in-edge field name. An empty name is ignored.
func WithInEdgeField(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.InEdgeField = name
		}
	}
}

// WithNormalizePath toggles in-edge normalization before detection.
func WithNormalizePath(on bool) Option {
	return func(o *Options) {
		o.NormalizePath = on
	}
}

// WithExcludeIndices adds idx to the exclusion set.
func WithExcludeIndices(idx ...int) Option {
	return func(o *Options) {
		o.ExcludeIndices = append(slices.Clone(o.ExcludeIndices), idx...)
	}
}

// WithOptions replaces the whole configuration with opts, keeping defaults
// for empty field names. It lets callers that already hold an Options value
// (decoded from a request, say) pass it through unchanged.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		out, in := o.OutEdgeField, o.InEdgeField
		*o = opts
		o.ExcludeIndices = slices.Clone(opts.ExcludeIndices)
		if o.OutEdgeField == "" {
			o.OutEdgeField = out
		}
		if o.InEdgeField == "" {
			o.InEdgeField = in
		}
	}
}

// buildOptions applies opts in order over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

package floydcmd

import (
	"strconv"

	"go.brendoncarroll.net/star"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/floydcycle/floyd"
)

var graphPathParam = star.Required[string]{
	ID:       "graph",
	ShortDoc: "path to a JSON graph file, or - for stdin",
	Parse:    star.ParseString,
}

var startParam = star.Optional[int]{
	ID:       "start",
	ShortDoc: "index to start from (default 0)",
	Parse:    strconv.Atoi,
}

var normalizeParam = star.Optional[bool]{
	ID:       "normalize",
	ShortDoc: "convert in-edges to out-edges before detection",
	Parse:    parseSwitch,
}

// parseSwitch reads a boolean flag; a bare flag means true.
func parseSwitch(s string) (bool, error) {
	if s == "" {
		return true, nil
	}

	return strconv.ParseBool(s)
}

var outFieldParam = star.Optional[string]{
	ID:       "out-field",
	ShortDoc: "record field holding successors (default out)",
	Parse:    star.ParseString,
}

var inFieldParam = star.Optional[string]{
	ID:       "in-field",
	ShortDoc: "record field holding predecessors (default in)",
	Parse:    star.ParseString,
}

var addrParam = star.Optional[string]{
	ID:       "addr",
	ShortDoc: "the address to serve on",
	Parse:    star.ParseString,
}

var cacheSizeParam = star.Optional[int]{
	ID:       "cache-size",
	ShortDoc: "number of detection results to keep",
	Parse:    strconv.Atoi,
}

// optionFlags are shared by every command that runs detection.
var optionFlags = map[string]star.Flag{
	"normalize": normalizeParam,
	"out-field": outFieldParam,
	"in-field":  inFieldParam,
}

// loadOptions builds detection options from the flags set on c.
func loadOptions(c star.Context) floyd.Options {
	opts := floyd.DefaultOptions()
	if v, ok := outFieldParam.LoadOpt(c); ok && v != "" {
		opts.OutEdgeField = v
	}
	if v, ok := inFieldParam.LoadOpt(c); ok && v != "" {
		opts.InEdgeField = v
	}
	if v, ok := normalizeParam.LoadOpt(c); ok {
		opts.NormalizePath = v
	}

	return opts
}

func withFlags(extra map[string]star.Flag) map[string]star.Flag {
	out := make(map[string]star.Flag, len(optionFlags)+len(extra))
	maps.Copy(out, optionFlags)
	maps.Copy(out, extra)

	return out
}

package floydcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"

	"github.com/katalvlaran/floydcycle/floyd"
)

var detectCmd = star.Command{
	Metadata: star.Metadata{
		Short: "report every cycle in a graph",
	},
	Pos:   []star.Positional{graphPathParam},
	Flags: optionFlags,
	F: func(c star.Context) error {
		return runDetect(c.Context, c.StdOut, graphPathParam.Load(c), loadOptions(c))
	},
}

var findCmd = star.Command{
	Metadata: star.Metadata{
		Short: "find the cycle reachable from one start index",
	},
	Pos:   []star.Positional{graphPathParam},
	Flags: withFlags(map[string]star.Flag{"start": startParam}),
	F: func(c star.Context) error {
		start, _ := startParam.LoadOpt(c)
		return runFind(c.Context, c.StdOut, graphPathParam.Load(c), start, loadOptions(c))
	},
}

var normalizeCmd = star.Command{
	Metadata: star.Metadata{
		Short: "rewrite in-edges as out-edges",
	},
	Pos: []star.Positional{graphPathParam},
	Flags: map[string]star.Flag{
		"out-field": outFieldParam,
		"in-field":  inFieldParam,
	},
	F: func(c star.Context) error {
		return runNormalize(c.Context, c.StdOut, graphPathParam.Load(c), loadOptions(c))
	},
}

func runDetect(ctx context.Context, w io.Writer, path string, opts floyd.Options) error {
	g, labels, err := loadGraph(path, opts)
	if err != nil {
		return err
	}
	cycles := floyd.DetectCycles(g, floyd.WithOptions(opts))
	logctx.Infof(ctx, "found %d cycles in %d nodes", len(cycles), len(g))

	if labels != nil {
		return writeJSON(w, floyd.LabelCycles(cycles, labels))
	}
	if cycles == nil {
		cycles = []floyd.Cycle{}
	}

	return writeJSON(w, cycles)
}

func runFind(ctx context.Context, w io.Writer, path string, start int, opts floyd.Options) error {
	g, labels, err := loadGraph(path, opts)
	if err != nil {
		return err
	}
	if err := floyd.ValidateStart(g, start); err != nil {
		return err
	}

	c, ok := floyd.Floyd(g, start, floyd.WithOptions(opts))
	reachable := floyd.ReachesCycle(g, start, floyd.WithOptions(opts))
	if !ok {
		logctx.Infof(ctx, "no cycle settled from %d (reachable=%v)", start, reachable)
		return writeJSON(w, map[string]any{"found": false, "reachable": reachable})
	}
	out := map[string]any{"found": true, "reachable": reachable, "cycle": c}
	if c.FirstIndex < len(labels) {
		out["firstLabel"] = labels[c.FirstIndex]
	}

	return writeJSON(w, out)
}

func runNormalize(ctx context.Context, w io.Writer, path string, opts floyd.Options) error {
	g, _, err := loadGraph(path, opts)
	if err != nil {
		return err
	}
	out := floyd.NormalizePath(g, floyd.WithOptions(opts))
	logctx.Infof(ctx, "normalized %d nodes", len(out))

	return writeJSON(w, out)
}

// loadGraph reads, decodes and validates the graph at path. "-" is stdin.
func loadGraph(path string, opts floyd.Options) (floyd.Graph, []string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, err
	}

	g, labels, err := floyd.DecodeGraph(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := floyd.Validate(g, floyd.WithOptions(opts)); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, labels, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

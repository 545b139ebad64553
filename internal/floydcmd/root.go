// Package floydcmd implements the floyd command line tool.
package floydcmd

import (
	"context"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// logger is shared by the context of every command and the HTTP server.
var logger = zap.NewNop()

// Main is the main function for the floyd CLI.
func Main() {
	if log, err := zap.NewProduction(); err == nil {
		logger = log
	}
	defer logger.Sync()

	ctx := context.Background()
	ctx = logctx.NewContext(ctx, logger)
	star.Main(rootCmd, star.MainBackground(ctx))
}

// Root returns the root command for the floyd CLI.
func Root() star.Command {
	return rootCmd
}

var rootCmd = star.NewDir(
	star.Metadata{
		Short: "floyd finds cycles in indexed graphs",
	}, map[string]star.Command{
		"detect":    detectCmd,
		"find":      findCmd,
		"normalize": normalizeCmd,
		"serve":     serveCmd,
	},
)

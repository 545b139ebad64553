package floydcmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/katalvlaran/floydcycle/internal/api"
	"github.com/katalvlaran/floydcycle/internal/cyclecache"
)

const defaultAddr = "127.0.0.1:8080"

var serveCmd = star.Command{
	Metadata: star.Metadata{
		Short: "serve cycle detection over HTTP",
	},
	Flags: map[string]star.Flag{
		"addr":       addrParam,
		"cache-size": cacheSizeParam,
	},
	F: func(c star.Context) error {
		addr, _ := addrParam.LoadOpt(c)
		if addr == "" {
			addr = defaultAddr
		}
		size, _ := cacheSizeParam.LoadOpt(c)

		l, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		return serve(c.Context, l, size, logger)
	},
}

// serve runs the API on l until ctx is done, then shuts down gracefully.
// Request logs go to log.
func serve(ctx context.Context, l net.Listener, cacheSize int, log *zap.Logger) error {
	cache, err := cyclecache.New(cacheSize)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           api.NewRouter(api.NewHandlers(cache), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(l)
	}()
	logctx.Infof(ctx, "serving on http://%v", l.Addr())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

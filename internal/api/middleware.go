package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions. A client-supplied
// id is kept; otherwise a random UUID is assigned.
const RequestIDHeader = "X-Request-ID"

// requestLogger attaches a request-scoped zap logger to the context and logs
// one line per completed request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			l := log.With(zap.String("request_id", id))
			ctx := logctx.NewContext(r.Context(), l)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			began := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			l.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(began)),
			)
		})
	}
}

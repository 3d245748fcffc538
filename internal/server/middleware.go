package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	pkgrequestctx "github.com/tubone24/eiga-miyou/pkg/requestctx"
)

// StartHTTP starts the HTTP server and blocks until it stops. On context
// cancellation it returns only after the graceful drain has finished, so
// callers can exit as soon as this returns.
func StartHTTP(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()
	// ListenAndServe returns as soon as Shutdown is called; in-flight
	// requests are still draining at that point.
	err := srv.ListenAndServe()
	if ctx.Err() != nil {
		<-drained
	}
	return err
}

// correlation id middleware
func withCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid := r.Header.Get("X-Correlation-Id")
		if cid == "" {
			cid = xid.New().String()
		}
		w.Header().Set("X-Correlation-Id", cid)
		r.Header.Set("X-Correlation-Id", cid)
		next.ServeHTTP(w, r.WithContext(pkgrequestctx.WithCorrelationID(r.Context(), cid)))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (sw *statusWriter) WriteHeader(code int) { sw.status = code; sw.ResponseWriter.WriteHeader(code) }
func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.size += n
	return n, err
}

// logging middleware
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(sw, r)
		cid := pkgrequestctx.CorrelationID(r.Context())
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("correlation_id", cid).
			Int("status", sw.status).
			Int("size", sw.size).
			Dur("duration", time.Since(start)).
			Msg("http_request")
	})
}

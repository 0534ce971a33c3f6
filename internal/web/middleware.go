package web

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/userpage/internal/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// LoggingMiddleware assigns a trace ID to each request, stores the logger in
// the request context and logs method, path, status and duration.
func LoggingMiddleware(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		traceID := r.Header.Get("X-Trace-Id")
		if traceID == "" {
			traceID = logging.GenerateTraceID()
		}
		ctx := logging.ContextWithTraceID(r.Context(), traceID)
		ctx = logger.WithContext(ctx)
		w.Header().Set("X-Trace-Id", traceID)

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r.WithContext(ctx))

		logger.Info().Ctx(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.status).
			Int64("bytes", wrapped.written).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

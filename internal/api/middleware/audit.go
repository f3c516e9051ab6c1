package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jmvillal/tasktrack/internal/api/shared"
)

// AuditMiddleware logs one line per request with the caller identity, client
// request ID, response status, and duration. It runs after IdentityMiddleware
// so the identity fields are already in the context.
func AuditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		ctx := r.Context()
		slog.Info("request completed",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("request_id", shared.GetRequestID(ctx)),
			slog.String("user_id", shared.GetUserID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}

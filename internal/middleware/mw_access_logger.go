package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// AccessLogger logs one line per request with its ID, route, status and latency.
func (m Middleware) AccessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, requestID := time.Now(), uuid.NewString()

		// Wrap the writer to capture the response status.
		cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(cw, r)

		slog.InfoContext(r.Context(), "request served",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", cw.status,
			"latency", time.Since(start).String(),
		)
	})
}

// captureWriter records the status code written to the underlying writer.
type captureWriter struct {
	http.ResponseWriter
	status int
}

func (c *captureWriter) WriteHeader(status int) {
	c.status = status
	c.ResponseWriter.WriteHeader(status)
}

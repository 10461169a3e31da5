package middleware

import (
	"net/http"
	"time"

	"go-todo-api/internal/metrics"
)

// Metrics records status codes and request latency for every request
// except the scrape endpoint itself.
func Metrics(recorder metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			started := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			recorder.RecordHTTPStatus(wrapped.status)
			recorder.RecordRequestDuration(time.Since(started))
		})
	}
}

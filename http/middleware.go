package napihttp

import (
	"net/http"
	"time"
)

// codeRateLimited is transport-owned: the request never reached the
// conversion layer or the service.
const codeRateLimited = "rate_limited"

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps the mux with rate limiting, request logging and
// metrics.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if s.limiter != nil && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests,
				[]byte(`{"code":"`+codeRateLimited+`","message":"request rate limit exceeded"}`))
			s.metrics.observe(r.Method+" "+r.URL.Path, http.StatusTooManyRequests, time.Since(start))
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = r.Method + " " + r.URL.Path
		}
		elapsed := time.Since(start)
		s.metrics.observe(route, rec.status, elapsed)
		s.log.Info("request",
			"route", route,
			"status", rec.status,
			"duration", elapsed,
		)
	})
}

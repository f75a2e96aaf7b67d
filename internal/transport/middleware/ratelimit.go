package middleware

import (
	"net"
	"net/http"
	"strconv"
)

type keyLimiter interface {
	AllowKey(key string) bool
	PerMinute() int
}

// RateLimit returns middleware that limits requests per client IP.
func RateLimit(limiter keyLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.AllowKey(clientIP(r)) {
				retryAfter := 60.0 / float64(max(limiter.PerMinute(), 1))
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)+1))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

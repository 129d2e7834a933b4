package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"
)

// NewLookupRateLimiter returns a middleware that limits each client IP to
// requestsPerMinute requests on each of prefixes and the paths below it.
// Other paths pass through untouched. Over-limit requests get 429 with the
// standard error body.
//
// Wire it after chimiddleware.RealIP so the limiter keys on the client
// address rather than the proxy's.
func NewLookupRateLimiter(requestsPerMinute int, prefixes ...string) func(http.Handler) http.Handler {
	limit := httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many lookup requests, slow down")
		}),
	)

	return func(next http.Handler) http.Handler {
		limited := limit(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range prefixes {
				if underPrefix(r.URL.Path, p) {
					limited.ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// underPrefix reports whether path is prefix itself or a segment below it.
func underPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

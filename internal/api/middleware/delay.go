package middleware

import (
	"net/http"
	"time"
)

// DelayMiddleware holds every request for the given duration before the
// handler runs, so an operation's effects become visible only after the
// configured delay. The hold respects request cancellation. A zero or
// negative duration disables the hold entirely.
func DelayMiddleware(delay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if delay <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"toyland-backend/internal/errs"
	"toyland-backend/internal/respond"
)

// RateLimit limits each client IP to requests per window. requests <= 0 disables it.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respond.Error(w, r, errs.NewTooManyRequestsError())
		}),
	)
}

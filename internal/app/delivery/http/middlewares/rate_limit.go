package middlewares

import (
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimiter limits every client IP to MaxRequests per second.
func (m *Middlewares) GlobalRateLimiter() func(next http.Handler) http.Handler {
	return m.limitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// BookingRateLimiter limits appointment creation per client IP.
func (m *Middlewares) BookingRateLimiter() func(next http.Handler) http.Handler {
	return m.limitByIP(m.InternalConfig.App.MaxBookingRequestsPerMinute, time.Minute)
}

// LoginRateLimiter limits login attempts per client IP.
func (m *Middlewares) LoginRateLimiter() func(next http.Handler) http.Handler {
	return m.limitByIP(m.InternalConfig.App.MaxLoginRequestsPerMinute, time.Minute)
}

func (m *Middlewares) limitByIP(requestLimit int, window time.Duration) func(next http.Handler) http.Handler {
	if requestLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimitExceeded(nil))
		}),
	)
}

package middleware

import (
	"net"
	"net/http"
	"strings"

	"go-clinic-management/internal/service"
	"go-clinic-management/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *service.RateLimiter
}

func NewRateLimitMiddleware(limiter *service.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit rejects requests from a client IP that exceeded the allowed rate
// within the current window.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(clientIP(r)) {
			response.TooManyRequests(w, "Too many booking requests, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first hop of X-Forwarded-For, set by the reverse proxy
// in front of the API, and falls back to the connection address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

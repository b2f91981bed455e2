package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-clinic-management/internal/service"
)

func newTestHandler(limiter *service.RateLimiter) http.Handler {
	m := NewRateLimitMiddleware(limiter)
	return m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestLimitRejectsAfterMax(t *testing.T) {
	store := service.NewMemoryCounterStore(0)
	handler := newTestHandler(service.NewRateLimiter(store, 3, time.Minute))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/booking", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/booking", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestLimitIsolatesClients(t *testing.T) {
	store := service.NewMemoryCounterStore(0)
	handler := newTestHandler(service.NewRateLimiter(store, 1, time.Minute))

	first := httptest.NewRequest(http.MethodPost, "/booking", nil)
	first.RemoteAddr = "10.0.0.1:1000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client: got status %d, want %d", rec.Code, http.StatusOK)
	}

	second := httptest.NewRequest(http.MethodPost, "/booking", nil)
	second.RemoteAddr = "10.0.0.2:1000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("second client: got status %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.168.1.5:9999", want: "192.168.1.5"},
		{name: "forwarded single", remoteAddr: "10.0.0.1:80", forwarded: "203.0.113.7", want: "203.0.113.7"},
		{name: "forwarded chain", remoteAddr: "10.0.0.1:80", forwarded: "203.0.113.7, 10.0.0.2", want: "203.0.113.7"},
		{name: "forwarded with spaces", remoteAddr: "10.0.0.1:80", forwarded: " 203.0.113.7 , 10.0.0.2", want: "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

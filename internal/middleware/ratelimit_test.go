package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func fixedClock(t *testing.T, rl *RateLimiter, start time.Time) *time.Time {
	t.Helper()
	current := start
	rl.now = func() time.Time { return current }
	return &current
}

func TestRateLimiterFixedWindow(t *testing.T) {
	rl := NewRateLimiter(100, time.Minute)
	current := fixedClock(t, rl, time.Unix(1700000000, 0))

	for i := 0; i < 100; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d within quota was rejected", i+1)
		}
	}

	if rl.Allow("1.2.3.4") {
		t.Fatal("101st request within the window was allowed")
	}

	// A different caller has its own window
	if !rl.Allow("5.6.7.8") {
		t.Fatal("unrelated caller was rejected")
	}

	// 61 seconds after the window start the counter resets entirely
	*current = current.Add(61 * time.Second)
	if !rl.Allow("1.2.3.4") {
		t.Fatal("request after window reset was rejected")
	}
}

func TestRateLimiterWindowBoundary(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	current := fixedClock(t, rl, time.Unix(1700000000, 0))

	rl.Allow("caller")
	rl.Allow("caller")

	// Exactly at the window edge the old window still applies
	*current = current.Add(time.Minute)
	if rl.Allow("caller") {
		t.Fatal("request exactly at window length should still be in the old window")
	}

	*current = current.Add(time.Second)
	if !rl.Allow("caller") {
		t.Fatal("request past the window length should start a fresh window")
	}
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(100, time.Minute)
	current := fixedClock(t, rl, time.Unix(1700000000, 0))

	rl.Allow("stale")
	*current = current.Add(3 * time.Minute)
	rl.Allow("fresh")

	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["stale"]; ok {
		t.Error("stale caller should have been evicted")
	}
	if _, ok := rl.visitors["fresh"]; !ok {
		t.Error("fresh caller should have been kept")
	}
}

func TestMiddlewareRejectsOverQuota(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	fixedClock(t, rl, time.Unix(1700000000, 0))

	handler := rl.Middleware("/api/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/goals", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", second.Code)
	}

	// Security headers are attached whether or not the check passed
	for _, rec := range []*httptest.ResponseRecorder{first, second} {
		for _, header := range []string{"X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy", "Content-Security-Policy"} {
			if rec.Header().Get(header) == "" {
				t.Errorf("response %d missing %s header", rec.Code, header)
			}
		}
	}
}

func TestMiddlewareSkipsUnprotectedPaths(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	fixedClock(t, rl, time.Unix(1700000000, 0))

	handler := rl.Middleware("/api/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/status-updated", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("unprotected request %d: got %d, want 200", i+1, rec.Code)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded-for first hop", "10.0.0.1, 10.0.0.2", "", "3.3.3.3:80", "10.0.0.1"},
		{"real ip fallback", "", "10.0.0.9", "3.3.3.3:80", "10.0.0.9"},
		{"remote addr strips port", "", "", "3.3.3.3:80", "3.3.3.3"},
		{"local default", "", "", "", "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/goals", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

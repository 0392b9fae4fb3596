package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// visitor is one caller's fixed-window counter.
type visitor struct {
	count       int
	windowStart time.Time
}

// RateLimiter tracks request counts per caller identity in fixed
// windows: the counter resets entirely once the window elapses rather
// than sliding.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int           // max requests per window
	window   time.Duration // window length
	now      func() time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window per caller and starts the background sweep that evicts stale
// callers, so the map stays bounded over long uptimes.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}

	go rl.sweepLoop()

	return rl
}

// Allow checks whether a request from the given caller fits in the
// current window.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{count: 1, windowStart: now}
		return true
	}

	if now.Sub(v.windowStart) > rl.window {
		v.count = 1
		v.windowStart = now
		return true
	}

	if v.count >= rl.limit {
		return false
	}

	v.count++
	return true
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.sweep()
	}
}

// sweep drops callers whose window lapsed long enough ago that they
// would start a fresh window anyway.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window * 2)
	for ip, v := range rl.visitors {
		if v.windowStart.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// Middleware enforces the quota on paths under prefix. The security
// headers are attached to every response, whether or not the rate
// check passes.
func (rl *RateLimiter) Middleware(prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			setSecurityHeaders(w.Header())

			if strings.HasPrefix(r.URL.Path, prefix) {
				ip := getClientIP(r)
				if !rl.Allow(ip) {
					slog.Warn("rate limit exceeded",
						"ip", ip,
						"path", r.URL.Path,
					)
					http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setSecurityHeaders(h http.Header) {
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("Content-Security-Policy",
		"default-src 'self'; script-src 'self' 'unsafe-inline' 'unsafe-eval'; style-src 'self' 'unsafe-inline';")
}

// getClientIP extracts the caller identity from the request, falling
// back to a local default when no address is available.
func getClientIP(r *http.Request) string {
	// X-Forwarded-For (proxy/load balancer): take first IP in list
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 && strings.TrimSpace(ips[0]) != "" {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	if ip == "" {
		return "127.0.0.1"
	}

	return ip
}

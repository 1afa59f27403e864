package api

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// throttle enforces a per-client minimum interval between requests. It exists
// for the autocomplete endpoint, which fans out to a shared public geocoding
// service with a strict usage policy.
type throttle struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	interval time.Duration

	// Injectable clock for tests.
	now func() time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{
		lastSeen: make(map[string]time.Time),
		interval: interval,
		now:      time.Now,
	}
}

// allow reports whether the client may proceed, recording the attempt if so.
func (t *throttle) allow(client string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.lastSeen[client]; ok && now.Sub(last) < t.interval {
		return false
	}

	// Keep the map from growing without bound under churny client IPs.
	if len(t.lastSeen) > 1024 {
		for client, last := range t.lastSeen {
			if now.Sub(last) >= t.interval {
				delete(t.lastSeen, client)
			}
		}
	}

	t.lastSeen[client] = now
	return true
}

func (t *throttle) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop so throttling still works
// behind a reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

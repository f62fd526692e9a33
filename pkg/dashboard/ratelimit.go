package dashboard

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// rateLimiter caps action requests per client within clock-aligned windows.
// All counts belong to the current window; the table is dropped when the
// window turns over, so it never holds more than one window of clients.
type rateLimiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	counts      map[string]int
	now         func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// allow counts one request from client. When the client is over the limit
// it returns false and the time left until the next window.
func (rl *rateLimiter) allow(client string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if start := now.Truncate(rl.window); !start.Equal(rl.windowStart) {
		rl.windowStart = start
		rl.counts = make(map[string]int)
	}

	if rl.counts[client] >= rl.limit {
		return false, rl.windowStart.Add(rl.window).Sub(now)
	}
	rl.counts[client]++
	return true, 0
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := rl.allow(clientIP(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(retrySeconds(retryAfter)))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the host part of RemoteAddr. Proxy headers are resolved
// upstream by the RealIP middleware, not here.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func retrySeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

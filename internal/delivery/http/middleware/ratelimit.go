package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	h "eventattendance/internal/delivery/http/helpers"
)

// sweepEvery bounds how often full buckets are pruned from the limiter.
const sweepEvery = time.Minute

// RateLimiter is an in-memory per-client token bucket.
type RateLimiter struct {
	// TrustForwardedFor keys clients on the address the fronting proxy appends
	// to X-Forwarded-For. Leave it off unless a proxy always sets the header.
	TrustForwardedFor bool

	capacity int
	rate     int
	now      func() time.Time

	mu        sync.Mutex
	state     map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens int
	last   time.Time
}

// NewRateLimiter allows perMinute requests per client per minute with bursts up to capacity.
func NewRateLimiter(capacity, perMinute int) *RateLimiter {
	if capacity <= 0 {
		capacity = perMinute
	}
	return &RateLimiter{
		capacity: capacity,
		rate:     perMinute,
		now:      time.Now,
		state:    make(map[string]*bucket),
	}
}

// Wrap returns next guarded by the limiter, keyed by client IP. Limited
// requests get 429.
func (l *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(l.clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) >= sweepEvery {
		l.sweep(now)
	}
	b, ok := l.state[key]
	if !ok {
		l.state[key] = &bucket{tokens: l.capacity - 1, last: now}
		return true
	}
	refill := int(now.Sub(b.last).Minutes() * float64(l.rate))
	if refill > 0 {
		b.tokens = min(b.tokens+refill, l.capacity)
		b.last = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets that have refilled completely; a fresh bucket is
// indistinguishable from them.
func (l *RateLimiter) sweep(now time.Time) {
	for key, b := range l.state {
		if b.tokens+int(now.Sub(b.last).Minutes()*float64(l.rate)) >= l.capacity {
			delete(l.state, key)
		}
	}
	l.lastSweep = now
}

// size reports the number of tracked clients.
func (l *RateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.state)
}

func (l *RateLimiter) clientIP(r *http.Request) string {
	if l.TrustForwardedFor {
		fwd := r.Header.Values("X-Forwarded-For")
		if len(fwd) > 0 {
			hops := strings.Split(fwd[len(fwd)-1], ",")
			if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return "unknown"
	}
	return host
}

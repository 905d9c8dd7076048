// Per-IP rate limiting
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

// ipLimiter tracks one token bucket per client IP. Buckets idle for
// longer than staleAfter are swept inline from allow, at most once per
// sweepEvery, so the map does not grow without bound and no background
// goroutine is kept.
type ipLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rps       rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

const (
	staleAfter = 10 * time.Minute
	sweepEvery = time.Minute
)

func newIPLimiter(rps float64, burst int) *ipLimiter {
	return &ipLimiter{
		buckets: make(map[string]*bucket),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepEvery {
		l.sweep(now)
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.lim.Allow()
}

// sweep drops every bucket idle past staleAfter. The caller holds mu.
func (l *ipLimiter) sweep(now time.Time) {
	cutoff := now.Add(-staleAfter)
	for ip, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
	l.lastSweep = now
}

// clientIP strips the port from RemoteAddr; the raw value is used when
// splitting fails.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns middleware applying a per-IP token bucket to every
// request it wraps. Over-limit requests get 429 with the standard error
// body.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newIPLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r)) {
				writeAuthError(w, http.StatusTooManyRequests, serr.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"testing"
	"time"
)

// a client idle past staleAfter loses its bucket on a later allow call and
// starts over with a full burst
func TestIPLimiter_SweepDropsStaleBuckets(t *testing.T) {
	l := newIPLimiter(0.001, 1)

	clock := time.Now()
	l.now = func() time.Time { return clock }

	if !l.allow("203.0.113.7") {
		t.Fatal("first request should pass")
	}
	if l.allow("203.0.113.7") {
		t.Fatal("second request should exhaust the burst of one")
	}

	clock = clock.Add(staleAfter + sweepEvery)

	// an unrelated client triggers the sweep
	if !l.allow("198.51.100.9") {
		t.Fatal("fresh client should pass")
	}

	l.mu.Lock()
	_, kept := l.buckets["203.0.113.7"]
	l.mu.Unlock()
	if kept {
		t.Fatal("stale bucket should have been swept")
	}

	if !l.allow("203.0.113.7") {
		t.Fatal("swept client should start with a fresh bucket")
	}
}

// buckets seen within staleAfter survive the sweep
func TestIPLimiter_SweepKeepsActiveBuckets(t *testing.T) {
	l := newIPLimiter(0.001, 2)

	clock := time.Now()
	l.now = func() time.Time { return clock }

	l.allow("203.0.113.7")

	clock = clock.Add(sweepEvery + time.Second)
	l.allow("198.51.100.9")

	l.mu.Lock()
	_, kept := l.buckets["203.0.113.7"]
	l.mu.Unlock()
	if !kept {
		t.Fatal("bucket seen within staleAfter should survive the sweep")
	}
}

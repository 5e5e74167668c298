package worker

import "testing"

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_AllowPerClient(t *testing.T) {
	limiter := NewLimiter(1, 1) // 1 rps, burst 1

	if !limiter.Allow("client-a") {
		t.Error("first request for client-a should be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("second immediate request for client-a should be limited")
	}

	// Another client has its own bucket.
	if !limiter.Allow("client-b") {
		t.Error("first request for client-b should be allowed")
	}
}

func TestLimiter_ReusesBucket(t *testing.T) {
	limiter := NewLimiter(100, 10)

	limiter.Allow("client-a")
	limiter.Allow("client-a")

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if len(limiter.limiters) != 1 {
		t.Errorf("expected one bucket, got %d", len(limiter.limiters))
	}
}

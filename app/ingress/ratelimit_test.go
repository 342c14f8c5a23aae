package ingress

import (
	"testing"
	"time"
)

func TestUserLimiter_BurstExhausts(t *testing.T) {
	limiter := newUserLimiter(3)

	allowed := 0
	for range 10 {
		if limiter.Allow(7) {
			allowed++
		}
	}
	if allowed != 3 {
		t.Fatalf("expected 3 of 10 immediate calls allowed, got %d", allowed)
	}

	// A freshly created bucket must survive its own creation; the same
	// bucket keeps serving the user.
	if len(limiter.limiters) != 1 {
		t.Fatalf("expected one bucket, got %d", len(limiter.limiters))
	}
}

func TestUserLimiter_BucketsAreIndependent(t *testing.T) {
	limiter := newUserLimiter(1)

	if !limiter.Allow(1) {
		t.Fatal("first call for user 1 must pass")
	}
	if limiter.Allow(1) {
		t.Fatal("second immediate call for user 1 must be rejected")
	}
	if !limiter.Allow(2) {
		t.Fatal("user 2 has an untouched bucket and must pass")
	}
}

func TestUserLimiter_PruneDropsIdleBuckets(t *testing.T) {
	limiter := newUserLimiter(5)

	limiter.Allow(1)
	limiter.limiters[1].seen = time.Now().Add(-time.Hour)

	// A new user's slow path triggers the prune.
	limiter.Allow(2)

	if _, ok := limiter.limiters[1]; ok {
		t.Error("idle bucket for user 1 should have been pruned")
	}
	if _, ok := limiter.limiters[2]; !ok {
		t.Error("the bucket created on the pruning call must survive")
	}
}

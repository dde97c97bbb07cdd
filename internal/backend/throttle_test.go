package backend

import (
	"context"
	"testing"
	"time"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(40 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		if !th.wait(ctx) {
			t.Fatalf("unexpected cancellation")
		}
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("expected at least two intervals, got %v", elapsed)
	}
}

func TestThrottleHonoursCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	th.wait(ctx)
	cancel()
	if th.wait(ctx) {
		t.Fatalf("expected wait to stop on cancel")
	}
}

func TestZeroThrottleNeverBlocks(t *testing.T) {
	var th *throttle
	if !th.wait(context.Background()) {
		t.Fatalf("expected nil throttle to pass")
	}
	if !newThrottle(0).wait(context.Background()) {
		t.Fatalf("expected zero interval to pass")
	}
}

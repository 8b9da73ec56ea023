package services

import (
	"context"
	"os"
	"testing"
	"time"
)

func newMemoryLimiter(t *testing.T, limit int, window time.Duration) *RateLimiter {
	t.Helper()
	old := os.Getenv("REDIS_URL")
	os.Unsetenv("REDIS_URL")
	t.Cleanup(func() {
		if old != "" {
			os.Setenv("REDIS_URL", old)
		}
	})
	return NewRateLimiter("test", limit, window)
}

func TestRateLimiterFixedWindow(t *testing.T) {
	rl := newMemoryLimiter(t, 5, time.Hour)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if !rl.Allow(ctx, "1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if rl.Allow(ctx, "1.2.3.4") {
		t.Error("sixth request should be denied")
	}

	// A different key has its own window
	if !rl.Allow(ctx, "5.6.7.8") {
		t.Error("request from another key should be allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := newMemoryLimiter(t, 1, 10*time.Millisecond)
	ctx := context.Background()

	if !rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("second request in window should be denied")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.Allow(ctx, "1.2.3.4") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestRateLimiterReset(t *testing.T) {
	rl := newMemoryLimiter(t, 1, time.Hour)
	ctx := context.Background()

	rl.Allow(ctx, "1.2.3.4")
	if rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("second request should be denied")
	}

	rl.Reset(ctx, "1.2.3.4")

	if !rl.Allow(ctx, "1.2.3.4") {
		t.Error("request after reset should be allowed")
	}
}

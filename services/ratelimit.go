package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a fixed-window request cap per key. With
// REDIS_URL set the counters live in Redis and are shared across
// instances; otherwise an in-memory map backs a single instance.
type RateLimiter struct {
	limit  int
	window time.Duration
	prefix string

	client *redis.Client

	mu      sync.Mutex
	windows map[string]*rateWindow
}

type rateWindow struct {
	count    int
	resetsAt time.Time
}

func NewRateLimiter(prefix string, limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		window:  window,
		prefix:  prefix,
		windows: make(map[string]*rateWindow),
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, rate limiter falling back to memory: %v", err)
			return rl
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable, rate limiter falling back to memory: %v", err)
			return rl
		}
		rl.client = client
	}
	return rl
}

// Allow consumes one request for the key and reports whether it is still
// within the limit. Counter errors fail open.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	if rl.client != nil {
		return rl.allowRedis(ctx, key)
	}
	return rl.allowMemory(key)
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("ratelimit:%s:%s", rl.prefix, key)

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Printf("rate limiter redis error, allowing request: %v", err)
		return true
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			log.Printf("rate limiter expire failed: %v", err)
		}
	}
	return count <= int64(rl.limit)
}

func (rl *RateLimiter) allowMemory(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetsAt) {
		rl.windows[key] = &rateWindow{count: 1, resetsAt: now.Add(rl.window)}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// Reset clears the counter for a key. Used by tests.
func (rl *RateLimiter) Reset(ctx context.Context, key string) {
	if rl.client != nil {
		rl.client.Del(ctx, fmt.Sprintf("ratelimit:%s:%s", rl.prefix, key))
		return
	}
	rl.mu.Lock()
	delete(rl.windows, key)
	rl.mu.Unlock()
}

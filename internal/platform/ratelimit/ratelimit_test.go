package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

func TestRedisLimiterFixedWindow(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLimiter(client, 2, time.Minute, "test:"+uuid.NewString(), logger.Nop())
	fixed := time.Date(2026, 1, 1, 12, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	ctx := context.Background()
	for i, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("Allow #%d: %v", i, err)
		}
		if ok != want {
			t.Fatalf("Allow #%d: want %v, got %v", i, want, ok)
		}
	}

	if ok, err := l.Allow(ctx, "10.0.0.2"); err != nil || !ok {
		t.Fatalf("Allow(other key): ok=%v err=%v", ok, err)
	}

	l.now = func() time.Time { return fixed.Add(time.Minute) }
	if ok, err := l.Allow(ctx, "10.0.0.1"); err != nil || !ok {
		t.Fatalf("Allow(next window): ok=%v err=%v", ok, err)
	}
}

func TestDisabledLimiterAllows(t *testing.T) {
	l := NewRedisLimiter(nil, 0, time.Minute, "", logger.Nop())
	ok, err := l.Allow(context.Background(), "any")
	if err != nil || !ok {
		t.Fatalf("Allow: ok=%v err=%v", ok, err)
	}
}

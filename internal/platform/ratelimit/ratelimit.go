package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Addr     string
	Password string
	DB       int
	// Limit is the number of requests allowed per Window. Zero disables limiting.
	Limit  int
	Window time.Duration
	Prefix string
}

// RedisLimiter is a fixed-window counter: INCR the window's key and set its
// expiry in one pipeline round trip.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
	log    *logger.Logger
	now    func() time.Time
}

func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration, prefix string, log *logger.Logger) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if strings.TrimSpace(prefix) == "" {
		prefix = "storefront:ratelimit"
	}
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: prefix,
		log:    log.With("component", "RedisLimiter"),
		now:    time.Now,
	}
}

// NewFromConfig dials redis and verifies it answers before returning.
func NewFromConfig(ctx context.Context, cfg Config, log *logger.Logger) (*RedisLimiter, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return NewRedisLimiter(client, cfg.Limit, cfg.Window, cfg.Prefix, log), client, nil
}

func (l *RedisLimiter) windowKey(key string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.limit <= 0 {
		return true, nil
	}
	wk := l.windowKey(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, wk)
		pipe.Expire(ctx, wk, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if incr.Val() > l.limit {
		l.log.Debug("rate limit exceeded", "key", key, "count", incr.Val())
		return false, nil
	}
	return true, nil
}

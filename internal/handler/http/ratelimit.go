// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const rateLimitKeyPrefix = "hotel-booking:ratelimit:login:"

// RateLimiter decides whether a client identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Close() error
}

// NewRateLimiter builds the login limiter described by cfg. It returns nil
// when rate limiting is disabled. With a Redis address the counters are
// shared between instances, otherwise they live in process memory.
func NewRateLimiter(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (RateLimiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	if cfg.RedisAddress == "" {
		log.Info().Int("requests", cfg.Requests).Dur("window", cfg.Window).Msg("in-memory login rate limiter enabled")
		return NewLocalRateLimiter(cfg.Requests, cfg.Window), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.RedisAddress, err)
	}

	log.Info().Str("addr", cfg.RedisAddress).Int("requests", cfg.Requests).Dur("window", cfg.Window).Msg("redis login rate limiter enabled")
	return NewRedisRateLimiter(client, cfg.Requests, cfg.Window), nil
}

// ── in-memory ────────────────────────────────────────────────────────────────

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter keeps a token bucket per key. A bucket holds requests
// tokens and refills completely over window.
type LocalRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit rate.Limit
	burst int

	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewLocalRateLimiter(requests int, window time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		window:   window,
		now:      time.Now,
	}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1), nil
}

// sweep drops buckets that have been idle long enough to be full again.
// It runs at most once per window.
func (l *LocalRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now

	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.window {
			delete(l.visitors, key)
		}
	}
}

func (l *LocalRateLimiter) Close() error {
	return nil
}

// ── redis ────────────────────────────────────────────────────────────────────

// RedisRateLimiter counts requests per key in fixed windows stored in Redis.
type RedisRateLimiter struct {
	client   *redis.Client
	requests int64
	window   time.Duration
}

func NewRedisRateLimiter(client *redis.Client, requests int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:   client,
		requests: int64(requests),
		window:   window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + key

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error counting request for %s: %w", key, err)
	}

	return incr.Val() <= l.requests, nil
}

func (l *RedisRateLimiter) Close() error {
	return l.client.Close()
}

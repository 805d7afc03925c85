// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding-window rate limiter backed by Valkey sorted
// sets, so the count is shared across all API instances. Credential
// endpoints are the only ones throttled; authenticated traffic is not.
type RateLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window
// per key. The prefix namespaces the Valkey keys, e.g. "login".
func NewRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow records one request for key and reports whether it is within the
// limit. On Valkey errors the request is allowed; an unreachable counter
// must not lock everyone out of login.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)
	redisKey := fmt.Sprintf("ratelimit:%s:%s", rl.prefix, key)

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", cutoff.UnixNano()))
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, redisKey, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return true
	}

	return count.Val() < int64(rl.limit)
}

// Reset clears the window for key. Used by tests and after a successful
// credential change.
func (rl *RateLimiter) Reset(ctx context.Context, key string) {
	rl.client.Del(ctx, fmt.Sprintf("ratelimit:%s:%s", rl.prefix, key))
}

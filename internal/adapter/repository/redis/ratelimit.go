// Package redis implements the per-phone application window on a sorted set
// of attempt timestamps.
package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pioneer:applications:"

type RateLimiter struct {
	rdb    *redis.Client
	window time.Duration
	ttl    time.Duration
}

func NewRateLimiter(rdb *redis.Client, window time.Duration) *RateLimiter {
	// Key TTL outlives the window so an idle phone expires on its own.
	return &RateLimiter{rdb: rdb, window: window, ttl: window + time.Hour}
}

// RecordAttempt trims expired attempts, counts what is left, then records the
// current one. The MULTI/EXEC pipeline keeps record-and-count atomic per
// phone, so the returned count never includes the attempt being recorded.
func (l *RateLimiter) RecordAttempt(ctx context.Context, phone string, now time.Time) (int, error) {
	key := keyPrefix + phone
	windowStart := now.Add(-l.window).UnixMilli()

	pipe := l.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	card := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	pipe.Expire(ctx, key, l.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(card.Val()), nil
}

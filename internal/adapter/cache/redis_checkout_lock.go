package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// RedisCheckoutLock serializes checkout per user id with SETNX. The TTL
// bounds how long a crashed checkout can block a user.
type RedisCheckoutLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCheckoutLock(rdb *redis.Client, ttl time.Duration) *RedisCheckoutLock {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisCheckoutLock{rdb: rdb, ttl: ttl}
}

func (l *RedisCheckoutLock) TryLock(ctx context.Context, userID string) (bool, error) {
	return l.rdb.SetNX(ctx, "checkout:lock:"+userID, "1", l.ttl).Result()
}

func (l *RedisCheckoutLock) Unlock(ctx context.Context, userID string) error {
	return l.rdb.Del(ctx, "checkout:lock:"+userID).Err()
}

var _ usecase.CheckoutLock = (*RedisCheckoutLock)(nil)

package sortedstorage

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSortedQueue manages a sorted set in Redis with TTL support.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) (*RedisSortedQueue, error) {
	queue := &RedisSortedQueue{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Enqueue adds a member with a given score and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	_, err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == -1 && rsq.ttl > 0 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// Tops retrieves up to `amount` members with the highest scores without removing them.
func (rsq *RedisSortedQueue) Tops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	if amount <= 0 {
		return []string{}, nil
	}
	return rsq.client.ZRevRange(ctx, queueKey, 0, amount-1).Result()
}

// Trim removes the lowest scored members so that at most `keep` remain.
// Concurrent trims of the same key are serialized with a distributed lock.
func (rsq *RedisSortedQueue) Trim(ctx context.Context, queueKey string, keep int64) error {
	mutex := rsq.locker.NewMutex(queueKey + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if rsq.client.ZCard(ctx, queueKey).Val() <= keep {
		return nil
	}
	// Ranks are ascending, so the first card-keep members are the oldest.
	return rsq.client.ZRemRangeByRank(ctx, queueKey, 0, -keep-1).Err()
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}

package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements a best-effort byte cache. A nil client turns every
// call into a no-op, which is how the service runs without REDIS_URI.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if r == nil || r.client == nil {
		return nil, false
	}
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("⚠️ redis get failed:", key, err)
		}
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if r == nil || r.client == nil {
		return
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Println("⚠️ redis set failed:", key, err)
	}
}

// Incr bumps the integer counter at key, creating it at 1.
func (r *RedisCache) Incr(ctx context.Context, key string) (int64, bool) {
	if r == nil || r.client == nil {
		return 0, true
	}
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		log.Println("⚠️ redis incr failed:", key, err)
		return 0, false
	}
	return n, true
}

// DeletePrefix removes every key starting with prefix.
func (r *RedisCache) DeletePrefix(ctx context.Context, prefix string) {
	if r == nil || r.client == nil {
		return
	}
	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		r.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Println("⚠️ redis scan failed:", prefix, err)
	}
}

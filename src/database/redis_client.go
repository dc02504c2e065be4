package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis. An empty address returns a nil client so the
// service can run without caching or background jobs.
func InitRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set. Cache and background jobs are disabled.")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}

// Package cache provides a Redis-backed read-through cache for hot,
// read-heavy query results.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ConnectWithRedis creates and verifies a Redis client connection.
func ConnectWithRedis(ctx context.Context, address string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: address,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

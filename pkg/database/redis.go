package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection. url may be a
// redis:// URL or a bare host:port.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redisOptions(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func redisOptions(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is empty")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	opts.PoolSize = 20
	opts.MinIdleConns = 2
	opts.MaxRetries = 3
	return opts, nil
}

// Package redis provides a Redis-backed durable storage implementation.
// Importing the package registers the redis and rediss URI schemes with
// the kv factory.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voyago/locale/kv"
)

const connectionTimeout = 5 * time.Second

func init() {
	kv.RegisterOpener("redis", Open)
	kv.RegisterOpener("rediss", Open)
}

// Storage is a Redis-backed storage implementation.
type Storage struct {
	client *redis.Client
}

// Open connects to the Redis instance described by the URI.
func Open(ctx context.Context, uri string) (kv.Storage, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, pingErr
	}

	return &Storage{client: client}, nil
}

// Get retrieves the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key without expiry; locale selections live until
// explicitly replaced.
func (s *Storage) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes the value stored under key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close releases the underlying client.
func (s *Storage) Close() error {
	return s.client.Close()
}

// Package driver provides implementations for external dependencies.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriver implements the key-value surface on a Redis backend.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriver creates a driver from a redis:// URL.
func NewRedisDriver(redisURL string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

// Close closes the Redis connection.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// Get returns the string value at key. The second result is false on a
// plain miss.
func (d *RedisDriver) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := d.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (d *RedisDriver) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := d.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (d *RedisDriver) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	removed, err := d.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("redis del: %w", err)
	}
	return removed, nil
}

// ScanKeys collects every key matching the glob pattern via cursor
// iteration, never KEYS.
func (d *RedisDriver) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := d.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %s: %w", pattern, err)
	}
	return keys, nil
}

func (d *RedisDriver) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := d.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis ttl %s: %w", key, err)
	}
	return ttl, nil
}

func (d *RedisDriver) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Info returns the server INFO fields as a flat map.
func (d *RedisDriver) Info(ctx context.Context) (map[string]string, error) {
	raw, err := d.client.Info(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("redis info: %w", err)
	}

	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, value, found := strings.Cut(line, ":"); found {
			fields[name] = value
		}
	}
	return fields, nil
}

func (d *RedisDriver) DBSize(ctx context.Context) (int64, error) {
	size, err := d.client.DBSize(ctx).Result()
	if err != nil {
		return 0, fmt.Errorf("redis dbsize: %w", err)
	}
	return size, nil
}

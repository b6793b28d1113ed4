package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrTokenNotFound = errors.New("token not found")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Token storage: bearer tokens map to user ids and expire after the
// configured TTL.

func (c *Client) SetToken(token string, userID uint, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "token:"+token, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (c *Client) GetToken(token string) (uint, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "token:"+token).Uint64()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrTokenNotFound
		}
		return 0, fmt.Errorf("failed to get token: %w", err)
	}
	return uint(val), nil
}

func (c *Client) DeleteToken(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "token:"+token).Err()
}

// IncrWindow increments a fixed-window request counter and returns the new
// count. The window expiry is set when the counter is first created.
func (c *Client) IncrWindow(key string, window time.Duration) (int64, error) {
	ctx := context.Background()
	n, err := c.rdb.Incr(ctx, "throttle:"+key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, "throttle:"+key, window).Err(); err != nil {
			return n, fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}
	return n, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

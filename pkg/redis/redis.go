package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/config"
)

// Client wraps the Redis connection. It caches the display-semester setting
// and backs the request rate limiter; every caller must tolerate a nil
// Client, since the server degrades to database-only when Redis is down.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── display-semester cache ──

const displaySemesterKey = "settings:current_display_semester_id"

// GetDisplaySemesterID returns the cached display-semester id, or 0 on a
// cache miss.
func (c *Client) GetDisplaySemesterID(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, displaySemesterKey).Result()
	if err == goredis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, nil // unreadable cache entry counts as a miss
	}
	return id, nil
}

// SetDisplaySemesterID caches the display-semester id.
func (c *Client) SetDisplaySemesterID(ctx context.Context, id int64, ttl time.Duration) error {
	return c.rdb.Set(ctx, displaySemesterKey, strconv.FormatInt(id, 10), ttl).Err()
}

// InvalidateDisplaySemester drops the cached display-semester id.
func (c *Client) InvalidateDisplaySemester(ctx context.Context) error {
	return c.rdb.Del(ctx, displaySemesterKey).Err()
}

// ── rate limiting ──

// CheckRateLimit counts requests for key inside a fixed window and reports
// whether this one is still allowed.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

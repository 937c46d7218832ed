package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = time.Minute * 5

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// LeaderboardCache keeps serialized rankings in Redis with a short TTL.
// Every operation is best effort: a miss or a Redis failure just sends the
// caller back to storage.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *RedisCfg, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, leaderboard cache degraded", slog.String("error", err.Error()))
	}
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *LeaderboardCache) GetBytes(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *LeaderboardCache) SetBytes(ctx context.Context, key string, b []byte) {
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("leaderboard cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *LeaderboardCache) Close() error {
	return c.client.Close()
}

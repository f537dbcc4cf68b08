package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	// CodeTTL is how long a resolved referral code stays cached
	CodeTTL = time.Hour
	// ClickWindow is how long a repeat click from the same IP is ignored
	ClickWindow = 24 * time.Hour
)

// Options configures the Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
}

// ReferralCache caches referral code lookups and deduplicates clicks in Redis
type ReferralCache struct {
	client *redis.Client
}

// NewReferralCache connects to Redis. An empty address returns a Noop cache.
func NewReferralCache(ctx context.Context, opts Options) (Cache, error) {
	if opts.Addr == "" {
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &ReferralCache{client: client}, nil
}

// NewReferralCacheWithClient wraps an existing client
func NewReferralCacheWithClient(client *redis.Client) *ReferralCache {
	return &ReferralCache{client: client}
}

func codeKey(code string) string {
	return "refcode:" + code
}

func clickKey(code, ipHash string) string {
	return "refclick:" + code + ":" + ipHash
}

// GetProfileID returns the cached profile for a code
func (c *ReferralCache) GetProfileID(ctx context.Context, code string) (uuid.UUID, bool, error) {
	val, err := c.client.Get(ctx, codeKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		// Corrupt entry; treat as a miss and let the caller overwrite it.
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// SetProfileID caches the profile a code resolves to
func (c *ReferralCache) SetProfileID(ctx context.Context, code string, id uuid.UUID) error {
	return c.client.Set(ctx, codeKey(code), id.String(), CodeTTL).Err()
}

// Invalidate drops a cached code
func (c *ReferralCache) Invalidate(ctx context.Context, code string) error {
	return c.client.Del(ctx, codeKey(code)).Err()
}

// FirstClick reports whether this is the first click for code from ipHash within ClickWindow
func (c *ReferralCache) FirstClick(ctx context.Context, code, ipHash string) (bool, error) {
	return c.client.SetNX(ctx, clickKey(code, ipHash), 1, ClickWindow).Result()
}

// Ping checks the Redis connection
func (c *ReferralCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *ReferralCache) Close() error {
	return c.client.Close()
}

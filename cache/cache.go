// Package cache keeps anonymous upstream reads in Redis, grouped by tags that
// successful mutations invalidate.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cache:"
	tagPrefix = "tag:"
	// DefaultTTL bounds how long a read survives without invalidation.
	DefaultTTL = time.Minute
)

// Key returns the redis key of a cached response
func Key(key string) string {
	return keyPrefix + key
}

// TagKey returns the redis set holding the keys tagged with tag
func TagKey(tag string) string {
	return tagPrefix + tag
}

// Redis is a tag-indexed response cache.
type Redis struct {
	rc  *redis.Client
	ttl time.Duration
}

// NewRedis creates the cache. A nil client yields a cache that skips every
// operation.
func NewRedis(rc *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{rc: rc, ttl: ttl}
}

// NewClient opens a redis client from config. It returns nil when no address
// is configured.
func NewClient(ctx context.Context, cfg *config.Redis) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, nil
	}
	rc := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		DialTimeout:  cfg.DialTimeout,
	})
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rc, nil
}

// Load returns a cached body. Misses and redis errors both report false.
func (c *Redis) Load(ctx context.Context, key string) ([]byte, bool) {
	if c.rc == nil {
		return nil, false
	}
	b, err := c.rc.Get(ctx, Key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warnf(ctx, "cache load %s: %v", key, err)
		}
		return nil, false
	}
	return b, true
}

// Store saves body and indexes it under each tag.
func (c *Redis) Store(ctx context.Context, key string, body []byte, tags []string) {
	if c.rc == nil {
		return
	}
	k := Key(key)
	_, err := c.rc.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, k, body, c.ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, TagKey(tag), k)
			// tag sets outlive their members by one ttl at most
			pipe.Expire(ctx, TagKey(tag), 2*c.ttl)
		}
		return nil
	})
	if err != nil {
		logger.Warnf(ctx, "cache store %s: %v", key, err)
	}
}

// Invalidate drops every response tagged with any of tags.
func (c *Redis) Invalidate(ctx context.Context, tags ...string) error {
	if c.rc == nil || len(tags) == 0 {
		return nil
	}
	for _, tag := range tags {
		tk := TagKey(tag)
		keys, err := c.rc.SMembers(ctx, tk).Result()
		if err != nil {
			return fmt.Errorf("failed to read tag %s: %w", tag, err)
		}
		if err := c.rc.Del(ctx, append(keys, tk)...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate tag %s: %w", tag, err)
		}
	}
	logger.Debugf(ctx, "cache invalidated tags %v", tags)
	return nil
}

// Noop satisfies the cache interfaces without storing anything.
type Noop struct{}

func (Noop) Load(context.Context, string) ([]byte, bool)     { return nil, false }
func (Noop) Store(context.Context, string, []byte, []string) {}
func (Noop) Invalidate(context.Context, ...string) error     { return nil }

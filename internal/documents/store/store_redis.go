package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gmarm/internal/documents"
	"gmarm/pkg/platform/sentinel"
)

const requirementsKeyPrefix = "gmarm:docreq:"

// RedisCache shares checklists between instances.
type RedisCache struct {
	client   *redis.Client
	cacheTTL time.Duration
}

func NewRedisCache(client *redis.Client, cacheTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, cacheTTL: cacheTTL}
}

func (c *RedisCache) SaveRequirements(ctx context.Context, reqs *documents.Requirements) error {
	if reqs == nil {
		return nil
	}
	payload, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}
	return c.client.Set(ctx, requirementsKeyPrefix+reqs.Key.String(), payload, c.cacheTTL).Err()
}

func (c *RedisCache) FindRequirements(ctx context.Context, key documents.RequirementKey) (*documents.Requirements, error) {
	raw, err := c.client.Get(ctx, requirementsKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get requirements: %w", err)
	}
	var reqs documents.Requirements
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return nil, fmt.Errorf("unmarshal requirements: %w", err)
	}
	return &reqs, nil
}

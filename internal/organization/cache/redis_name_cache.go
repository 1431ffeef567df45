package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/console/internal/organization/domain"
)

const keyPrefix = "org:name:"

type redisNameCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisNameCache(client redis.UniversalClient, ttl time.Duration) domain.NameCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisNameCache{client: client, ttl: ttl}
}

func (c *redisNameCache) GetName(ctx context.Context, orgID string) (string, bool, error) {
	name, err := c.client.Get(ctx, key(orgID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load organization name: %w", err)
	}
	return name, true, nil
}

func (c *redisNameCache) SetName(ctx context.Context, orgID, name string) error {
	if err := c.client.Set(ctx, key(orgID), name, c.ttl).Err(); err != nil {
		return fmt.Errorf("persist organization name: %w", err)
	}
	return nil
}

func key(orgID string) string {
	return keyPrefix + orgID
}

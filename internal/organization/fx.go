package organization

import (
	"context"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/console/internal/config"
	"github.com/smallbiznis/console/internal/organization/cache"
	"github.com/smallbiznis/console/internal/organization/domain"
	"github.com/smallbiznis/console/internal/organization/repository"
	"github.com/smallbiznis/console/internal/organization/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("organization.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(newNameCache),
	fx.Provide(service.NewService),
)

type nameCacheResult struct {
	fx.Out

	Cache domain.NameCache
}

// newNameCache wires the redis cache only when REDIS_ADDR is configured.
func newNameCache(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) nameCacheResult {
	if !cfg.Redis.Enabled() {
		return nameCacheResult{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn("organization name cache unreachable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return nameCacheResult{Cache: cache.NewRedisNameCache(client, cfg.OrgNameCacheTTL)}
}

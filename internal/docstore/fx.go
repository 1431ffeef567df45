package docstore

import (
	"context"

	"github.com/smallbiznis/console/internal/config"
	"github.com/smallbiznis/console/internal/firebaseadmin"
	obslogger "github.com/smallbiznis/console/internal/observability/logger"
	"github.com/smallbiznis/console/pkg/db"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/fx"
	"go.uber.org/zap"
	gormprometheus "gorm.io/plugin/prometheus"
)

var Module = fx.Module("docstore",
	fx.Provide(NewStore),
)

// NewStore selects the document backend configured for this process.
func NewStore(lc fx.Lifecycle, cfg config.Config, admin *firebaseadmin.Bootstrapper, log *zap.Logger) (Store, error) {
	if cfg.DocumentStore.Driver != config.DocumentStoreSQL {
		log.Info("document store ready", zap.String("driver", config.DocumentStoreFirestore))
		return NewFirestore(admin.Firestore), nil
	}

	conn, err := db.Open(cfg.DocumentStore,
		obslogger.NewGormLogger(obslogger.DefaultGormLoggerConfig()),
		otelgorm.NewPlugin(otelgorm.WithDBName(cfg.DocumentStore.DBName)),
		gormprometheus.New(gormprometheus.Config{
			DBName:          cfg.DocumentStore.DBName,
			RefreshInterval: 15,
		}),
	)
	if err != nil {
		return nil, err
	}

	store := NewSQL(conn)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Migrate(ctx); err != nil {
				return err
			}
			return seedFromConfig(ctx, store, cfg, log)
		},
		OnStop: func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	log.Info("document store ready",
		zap.String("driver", config.DocumentStoreSQL),
		zap.String("db_type", cfg.DocumentStore.DBType),
	)
	return store, nil
}

func seedFromConfig(ctx context.Context, store *SQLStore, cfg config.Config, log *zap.Logger) error {
	path := cfg.DocumentStore.SeedFile
	if path == "" {
		return nil
	}
	if cfg.IsProduction() {
		log.Warn("document seed ignored in production", zap.String("file", path))
		return nil
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		return err
	}
	written, err := Seed(ctx, store, seed)
	if err != nil {
		return err
	}
	log.Info("document store seeded", zap.String("file", path), zap.Int("documents", written))
	return nil
}

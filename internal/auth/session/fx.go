package session

import (
	"context"

	"github.com/smallbiznis/console/internal/config"
	"github.com/smallbiznis/console/internal/firebaseadmin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("auth.session",
	fx.Provide(NewManager),
	fx.Provide(newProvider),
)

func newProvider(cfg config.Config, admin *firebaseadmin.Bootstrapper, log *zap.Logger) *Provider {
	source := func(ctx context.Context) (Verifier, error) {
		client, err := admin.Auth(ctx)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return NewProvider(source, cfg.AuthCheckRevoked, log)
}

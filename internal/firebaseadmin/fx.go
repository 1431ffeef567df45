package firebaseadmin

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("firebaseadmin",
	fx.Provide(CredentialsFromConfig),
	fx.Provide(NewBootstrapper),
	fx.Invoke(registerHooks),
)

func registerHooks(lc fx.Lifecycle, b *Bootstrapper) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return b.Close()
		},
	})
}

package main

import (
	"github.com/smallbiznis/console/internal/auth/session"
	"github.com/smallbiznis/console/internal/blobstore"
	"github.com/smallbiznis/console/internal/config"
	"github.com/smallbiznis/console/internal/docstore"
	"github.com/smallbiznis/console/internal/firebaseadmin"
	"github.com/smallbiznis/console/internal/invitation"
	"github.com/smallbiznis/console/internal/observability"
	"github.com/smallbiznis/console/internal/organization"
	"github.com/smallbiznis/console/internal/server"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		firebaseadmin.Module,
		docstore.Module,
		blobstore.Module,

		// Functional Domains
		session.Module,
		organization.Module,
		invitation.Module,

		server.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
	app.Run()
}

package blobstore

import (
	"github.com/smallbiznis/console/internal/config"
	"github.com/smallbiznis/console/internal/firebaseadmin"
	"go.uber.org/fx"
)

var Module = fx.Module("blobstore",
	fx.Provide(NewStore),
)

func NewStore(cfg config.Config, admin *firebaseadmin.Bootstrapper) Store {
	if cfg.BlobStore.Driver == config.BlobStoreLocal {
		return NewLocal(cfg.BlobStore.LocalDir)
	}
	return NewFirebase(admin.Bucket)
}

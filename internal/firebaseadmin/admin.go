package firebaseadmin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Handle bundles the three admin capabilities shared by every request.
type Handle struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *gcs.Client
	Bucket    *gcs.BucketHandle
}

// Close releases the document and storage client connections.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	var errs []error
	if h.Firestore != nil {
		errs = append(errs, h.Firestore.Close())
	}
	if h.Storage != nil {
		errs = append(errs, h.Storage.Close())
	}
	return errors.Join(errs...)
}

// Factory builds a handle from credentials. It must not block on network I/O.
type Factory func(ctx context.Context, creds Credentials) (*Handle, error)

// Bootstrapper lazily builds the process-wide Handle exactly once.
// A failed build leaves it uninitialized so a later call can try again.
type Bootstrapper struct {
	creds   Credentials
	factory Factory
	log     *zap.Logger

	mu     sync.Mutex
	handle atomic.Pointer[Handle]
}

func NewBootstrapper(creds Credentials, log *zap.Logger) *Bootstrapper {
	return NewBootstrapperWithFactory(creds, NewHandle, log)
}

func NewBootstrapperWithFactory(creds Credentials, factory Factory, log *zap.Logger) *Bootstrapper {
	if factory == nil {
		factory = NewHandle
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Bootstrapper{
		creds:   creds,
		factory: factory,
		log:     log.Named("firebaseadmin"),
	}
}

// Get returns the shared handle, building it on first use.
func (b *Bootstrapper) Get(ctx context.Context) (*Handle, error) {
	if h := b.handle.Load(); h != nil {
		return h, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if h := b.handle.Load(); h != nil {
		return h, nil
	}

	h, err := b.factory(ctx, b.creds)
	if err != nil {
		b.log.Error("admin client initialization failed", zap.Error(err))
		return nil, err
	}

	b.handle.Store(h)
	b.log.Info("admin client initialized",
		zap.Bool("service_account", b.creds.Complete()),
		zap.String("project_id", strings.TrimSpace(b.creds.ProjectID)),
	)
	return h, nil
}

func (b *Bootstrapper) Auth(ctx context.Context) (*auth.Client, error) {
	h, err := b.Get(ctx)
	if err != nil {
		return nil, err
	}
	return h.Auth, nil
}

func (b *Bootstrapper) Firestore(ctx context.Context) (*firestore.Client, error) {
	h, err := b.Get(ctx)
	if err != nil {
		return nil, err
	}
	return h.Firestore, nil
}

func (b *Bootstrapper) Bucket(ctx context.Context) (*gcs.BucketHandle, error) {
	h, err := b.Get(ctx)
	if err != nil {
		return nil, err
	}
	return h.Bucket, nil
}

// Close releases the handle if one was built.
func (b *Bootstrapper) Close() error {
	return b.handle.Load().Close()
}

// NewHandle builds a handle from service-account credentials when they are complete,
// and from application default credentials otherwise.
func NewHandle(ctx context.Context, creds Credentials) (*Handle, error) {
	appCfg := &firebase.Config{
		ProjectID:     strings.TrimSpace(creds.ProjectID),
		StorageBucket: creds.Bucket(),
	}

	var opts []option.ClientOption
	if creds.Complete() {
		payload, err := creds.ServiceAccountJSON()
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(payload))
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase firestore: %w", err)
	}

	// Built directly rather than through app.Storage so the client can be closed.
	storageClient, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		_ = fsClient.Close()
		return nil, fmt.Errorf("firebase storage: %w", err)
	}

	var bucket *gcs.BucketHandle
	if appCfg.StorageBucket != "" {
		bucket = storageClient.Bucket(appCfg.StorageBucket)
	}

	return &Handle{
		App:       app,
		Auth:      authClient,
		Firestore: fsClient,
		Storage:   storageClient,
		Bucket:    bucket,
	}, nil
}

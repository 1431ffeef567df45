package blobstore

import (
	"context"
	"errors"
	"strings"

	gcs "cloud.google.com/go/storage"
)

// BucketSource yields the default bucket of the admin handle.
type BucketSource func(ctx context.Context) (*gcs.BucketHandle, error)

type bucketStore struct {
	source BucketSource
}

func NewFirebase(source BucketSource) Store {
	return &bucketStore{source: source}
}

func (s *bucketStore) Open(ctx context.Context, name string) (*Object, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if name == "" {
		return nil, ErrInvalidName
	}

	bucket, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	if bucket == nil {
		return nil, ErrNoBucket
	}

	reader, err := bucket.Object(name).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Object{
		Body:        reader,
		ContentType: reader.Attrs.ContentType,
		Size:        reader.Attrs.Size,
	}, nil
}

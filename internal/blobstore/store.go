package blobstore

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("blob not found")
	ErrInvalidName = errors.New("invalid blob name")
	ErrNoBucket    = errors.New("storage bucket not configured")
)

// Object is an open blob. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

type Store interface {
	Open(ctx context.Context, name string) (*Object, error)
}

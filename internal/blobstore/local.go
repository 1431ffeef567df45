package blobstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type localStore struct {
	root string
}

// NewLocal serves blobs from a directory, for development without a bucket.
func NewLocal(root string) Store {
	return &localStore{root: root}
}

func (s *localStore) Open(ctx context.Context, name string) (*Object, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return nil, ErrInvalidName
	}
	path := filepath.Join(s.root, filepath.FromSlash(name))

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &Object{
		Body:        file,
		ContentType: mtype.String(),
		Size:        info.Size(),
	}, nil
}

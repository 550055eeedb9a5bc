// Package storage implements file persistence for uploaded content.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vinmart/config"
	"vinmart/internal/domain/service"
)

const imagesSubdir = "images"

// localStore writes uploads under the public directory served by the HTTP layer.
type localStore struct {
	publicDir string
}

// NewLocalStore is the constructor for localStore.
func NewLocalStore(cfg *config.Config) (service.FileStore, error) {
	dir := cfg.Static.PublicDir
	if err := os.MkdirAll(filepath.Join(dir, imagesSubdir), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	return &localStore{publicDir: dir}, nil
}

// Save writes the content under a collision-free name and returns the public URL.
func (s *localStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	// Keep the original extension, randomize the rest of the name.
	name := time.Now().UTC().Format("20060102T150405") + "-" + uuid.NewString() + filepath.Ext(filename)

	dst, err := os.Create(filepath.Join(s.publicDir, imagesSubdir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}

	return "/" + path.Join(imagesSubdir, name), nil
}

package service

import (
	"context"
	"io"
)

// FileStore abstracts where uploaded files (avatars) end up and the public URL
// they are served from.
type FileStore interface {
	// Save writes the file content and returns the public URL.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}

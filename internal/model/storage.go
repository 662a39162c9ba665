package model

import (
	"context"
	"io"
)

// Storage keeps profile pictures as objects addressed by key.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Download opens the object. Callers must close the returned reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

package storage

import (
	"context"
	"io"
)

// AssetStore defines the interface for the storefront asset backend
// (logo and banner images). The production deployment points this at the
// image-hosting collaborator; locally it is backed by a filesystem.
type AssetStore interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

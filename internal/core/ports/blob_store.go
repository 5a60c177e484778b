package ports

import (
	"context"
	"io"
)

// BlobStore abstracts the external object storage holding article images.
type BlobStore interface {
	// Upload stores an object under key and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyForURL maps a public URL back to the object key it serves.
	// ok is false when the URL does not point into this store.
	KeyForURL(url string) (key string, ok bool)
}

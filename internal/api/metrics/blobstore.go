package metrics

import (
	"context"
	"io"
	"time"

	"github.com/redmisiones/news-api/internal/core/ports"
)

// TimedBlobStore decorates a BlobStore, observing ImageUploadDuration for
// every upload. Wired in at composition time so the core stays metric-free.
type TimedBlobStore struct {
	Next ports.BlobStore
}

func (t TimedBlobStore) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (string, error) {
	start := time.Now()
	url, err := t.Next.Upload(ctx, key, body, contentType, size)
	ImageUploadDuration.Observe(time.Since(start).Seconds())
	return url, err
}

func (t TimedBlobStore) Delete(ctx context.Context, key string) error {
	return t.Next.Delete(ctx, key)
}

func (t TimedBlobStore) KeyForURL(url string) (string, bool) {
	return t.Next.KeyForURL(url)
}

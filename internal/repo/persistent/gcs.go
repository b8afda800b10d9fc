package persistent

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

type GCSPublisher struct {
	client *storage.Client
	bucket string
}

// NewGCSPublisher creates a GCS client for bucket. opts are passed through,
// allowing credential injection.
func NewGCSPublisher(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSPublisher, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("GCSPublisher - New - storage.NewClient: %w", err)
	}

	return &GCSPublisher{client: client, bucket: bucket}, nil
}

func (p *GCSPublisher) Publish(ctx context.Context, localPath, key, contentType string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("GCSPublisher - Publish - os.ReadFile: %w", err)
	}

	w := p.client.Bucket(p.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.PredefinedACL = "publicRead"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("GCSPublisher - Publish - w.Write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("GCSPublisher - Publish - w.Close: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, p.bucket, url.PathEscape(key)), nil
}

func (p *GCSPublisher) Close() error {
	return p.client.Close()
}

package persistent

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioPublisher publishes to any S3-compatible endpoint through minio-go.
// URLs are built from publicBase since PutObject returns no location.
type MinioPublisher struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func NewMinioPublisher(endpoint, accessKey, secretKey, bucket, publicBase string, useSSL bool) (*MinioPublisher, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("MinioPublisher - New - minio.New: %w", err)
	}

	return &MinioPublisher{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (p *MinioPublisher) Publish(ctx context.Context, localPath, key, contentType string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("MinioPublisher - Publish - os.ReadFile: %w", err)
	}

	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return "", fmt.Errorf("MinioPublisher - Publish - p.client.PutObject: %w", err)
	}

	return p.publicBase + "/" + key, nil
}

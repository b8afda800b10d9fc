package persistent

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/francepatrick/s3-image-uploader/pkg/s3client"
)

type S3Publisher struct {
	uploader *manager.Uploader
	bucket   string
}

func NewS3Publisher(s3c *s3client.S3Client, bucket string) *S3Publisher {
	return &S3Publisher{
		uploader: manager.NewUploader(s3c.Client),
		bucket:   bucket,
	}
}

func (p *S3Publisher) Publish(ctx context.Context, localPath, key, contentType string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("S3Publisher - Publish - os.ReadFile: %w", err)
	}

	out, err := p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("S3Publisher - Publish - p.uploader.Upload: %w", err)
	}

	return out.Location, nil
}

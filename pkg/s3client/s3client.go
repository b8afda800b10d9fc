package s3client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	_defaultRegion = "us-east-1"
)

// S3Client binds static credentials to an S3 client. Credentials are not
// checked here; the backend rejects bad ones on the first request.
type S3Client struct {
	endpoint     string
	region       string
	accessKey    string
	secretKey    string
	usePathStyle bool

	Client *s3.Client
}

func New(ctx context.Context, accessKey, secretKey string, opts ...Option) (*S3Client, error) {
	s3c := &S3Client{
		region:    _defaultRegion,
		accessKey: accessKey,
		secretKey: secretKey,
	}

	for _, opt := range opts {
		opt(s3c)
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(s3c.region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3c.accessKey, s3c.secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("S3Client - New - config.LoadDefaultConfig: %w", err)
	}

	s3c.Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = s3c.usePathStyle
		if s3c.endpoint != "" {
			o.BaseEndpoint = aws.String(s3c.endpoint)
		}
	})

	return s3c, nil
}

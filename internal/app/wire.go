package app

import (
	"context"
	"fmt"

	"github.com/francepatrick/s3-image-uploader/config"
	infrakafka "github.com/francepatrick/s3-image-uploader/internal/infrastructure/kafka"
	"github.com/francepatrick/s3-image-uploader/internal/infrastructure/processor"
	"github.com/francepatrick/s3-image-uploader/internal/infrastructure/staging"
	"github.com/francepatrick/s3-image-uploader/internal/repo"
	"github.com/francepatrick/s3-image-uploader/internal/repo/persistent"
	"github.com/francepatrick/s3-image-uploader/internal/usecase/upload"
	"github.com/francepatrick/s3-image-uploader/pkg/kafka/producer"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
	"github.com/francepatrick/s3-image-uploader/pkg/s3client"
	"github.com/francepatrick/s3-image-uploader/pkg/types/errs"
	"google.golang.org/api/option"
)

// NewUploadUseCase wires the upload pipeline from cfg. The returned func
// releases clients opened along the way and is safe to call once.
func NewUploadUseCase(ctx context.Context, cfg *config.Config, l logger.Interface) (*upload.UseCase, func(), error) {
	var closers []func() error

	closeFn := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				l.Error(fmt.Errorf("app - close: %w", err))
			}
		}
	}

	// Repository
	publisher, closePublisher, err := newPublisher(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("app - NewUploadUseCase - newPublisher: %w", err)
	}
	if closePublisher != nil {
		closers = append(closers, closePublisher)
	}

	// Staging
	area, err := staging.New(cfg.Staging.BaseDir)
	if err != nil {
		closeFn()

		return nil, nil, fmt.Errorf("app - NewUploadUseCase - staging.New: %w", err)
	}

	opts := []upload.Option{
		upload.EnforceValidation(cfg.Upload.EnforceValidation),
	}

	// Kafka Producer
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers)
		if err != nil {
			closeFn()

			return nil, nil, fmt.Errorf("app - NewUploadUseCase - producer.New: %w", err)
		}

		events := infrakafka.NewEventProducer(kafkaProducer.Writer, cfg.Kafka.Topic)
		closers = append(closers, events.Close)
		opts = append(opts, upload.Events(events))
	}

	uc := upload.New(
		area,
		processor.New(processor.Quality(cfg.Upload.JPEGQuality)),
		publisher,
		l,
		opts...,
	)

	return uc, closeFn, nil
}

func newPublisher(ctx context.Context, cfg *config.Config) (repo.Publisher, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverS3:
		s3c, err := s3client.New(ctx, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey,
			s3client.Region(cfg.S3.Region),
			s3client.Endpoint(cfg.S3.Endpoint),
			s3client.UsePathStyle(cfg.S3.UsePathStyle),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("s3client.New: %w", err)
		}

		return persistent.NewS3Publisher(s3c, cfg.S3.Bucket), nil, nil

	case config.DriverMinio:
		p, err := persistent.NewMinioPublisher(
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.Bucket,
			cfg.Minio.PublicBase,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("persistent.NewMinioPublisher: %w", err)
		}

		return p, nil, nil

	case config.DriverGCS:
		var opts []option.ClientOption
		if cfg.GCS.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.GCS.CredentialsFile))
		}

		p, err := persistent.NewGCSPublisher(ctx, cfg.GCS.Bucket, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("persistent.NewGCSPublisher: %w", err)
		}

		return p, p.Close, nil

	case config.DriverLocal:
		p, err := persistent.NewLocalPublisher(cfg.Local.BaseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("persistent.NewLocalPublisher: %w", err)
		}

		return p, nil, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", errs.ErrUnknownStorageDriver, cfg.Storage.Driver)
}

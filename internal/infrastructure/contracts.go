package infrastructure

import (
	"context"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
)

type (
	StagingArea interface {
		EnsureDaily(ctx context.Context) (entity.StagingDir, error)
		WriteOriginal(dir entity.StagingDir, payload, ext string) (entity.StagedFile, error)
	}

	DerivativeGenerator interface {
		Generate(ctx context.Context, original entity.StagedFile, dir entity.StagingDir) (entity.DerivativeSet, error)
	}

	EventsSender interface {
		SendUploaded(ctx context.Context, event *entity.UploadedEvent) error
		Close() error
	}
)

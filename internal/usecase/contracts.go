package usecase

import (
	"context"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
)

type (
	UploadUseCase interface {
		Upload(ctx context.Context, contents string) (*entity.PublicationResult, error)
	}
)

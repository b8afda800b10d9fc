package v1

import (
	"time"

	"github.com/francepatrick/s3-image-uploader/internal/usecase"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
)

type V1 struct {
	upl     usecase.UploadUseCase
	logger  logger.Interface
	timeout time.Duration
}

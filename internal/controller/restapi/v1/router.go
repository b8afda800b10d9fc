package v1

import (
	"time"

	"github.com/francepatrick/s3-image-uploader/internal/usecase"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewUploadRoutes(apiV1Group fiber.Router, upl usecase.UploadUseCase, l logger.Interface, timeout time.Duration) {
	r := &V1{upl: upl, logger: l, timeout: timeout}

	{
		// API
		apiV1Group.Post("/upload", r.upload)

		// UI
		apiV1Group.Get("/", r.showUI)
	}
}

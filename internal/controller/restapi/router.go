package restapi

import (
	"github.com/francepatrick/s3-image-uploader/config"
	v1 "github.com/francepatrick/s3-image-uploader/internal/controller/restapi/v1"
	"github.com/francepatrick/s3-image-uploader/internal/usecase"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// @title S3 image uploader
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, upl usecase.UploadUseCase, l logger.Interface) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewUploadRoutes(apiV1Group, upl, l, cfg.Upload.Timeout)
	}
}

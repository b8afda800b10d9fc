package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/francepatrick/s3-image-uploader/internal/controller/restapi/v1/request"
	"github.com/francepatrick/s3-image-uploader/internal/controller/restapi/v1/response"
	"github.com/francepatrick/s3-image-uploader/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary  	Upload image
// @Description Stages a data URI image, derives resized (800px wide) and thumbnail (200x200) JPEGs, publishes all three
// @Tags 		images
// @Accept 		json
// @Produce 	json
// @Param 		request body 	 request.Upload true "Data URI encoded PNG/JPEG"
// @Success 	201 {object} response.Upload
// @Failure 	400 {object} response.Error "Not a data:image payload or malformed body"
// @Failure 	413 {object} response.Error "Body too large"
// @Failure 	500 {object} response.Error "Staging, processing or publication failure"
// @Router 		/v1/upload [post]
func (r *V1) upload(ctx *fiber.Ctx) error {
	var body request.Upload

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	uctx := ctx.UserContext()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		uctx, cancel = context.WithTimeout(uctx, r.timeout)
		defer cancel()
	}

	result, err := r.upl.Upload(uctx, body.Contents)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		r.logger.Error(err, "restapi - v1 - upload")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusCreated).JSON(response.Upload{
		Original:  result.Original,
		Thumbnail: result.Thumbnail,
		Resized:   result.Resized,
	})
}

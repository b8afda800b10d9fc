package upload

import (
	"strings"

	"github.com/francepatrick/s3-image-uploader/pkg/types/errs"
)

const signature = "data:image"

// Validate accepts contents whose first 10 characters are "data:image".
// Size is not checked.
func Validate(contents string) error {
	if strings.HasPrefix(contents, signature) {
		return nil
	}

	return errs.ErrInvalidImage
}

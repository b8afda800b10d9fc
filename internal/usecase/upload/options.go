package upload

import (
	"time"

	"github.com/francepatrick/s3-image-uploader/internal/infrastructure"
)

type Option func(*UseCase)

// EnforceValidation makes a rejected signature fail the upload before any
// I/O. When false the rejection is only logged and the pipeline continues.
func EnforceValidation(enforce bool) Option {
	return func(uc *UseCase) {
		uc.enforceValidation = enforce
	}
}

func Events(es infrastructure.EventsSender) Option {
	return func(uc *UseCase) {
		uc.events = es
	}
}

func ContentType(contentType string) Option {
	return func(uc *UseCase) {
		if contentType != "" {
			uc.contentType = contentType
		}
	}
}

func Clock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

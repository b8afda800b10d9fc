package repo

import (
	"context"
)

const DefaultContentType = "image/jpeg"

type (
	// Publisher pushes a local file to object storage, readable by anyone,
	// and returns its public location.
	Publisher interface {
		Publish(ctx context.Context, localPath, key, contentType string) (string, error)
	}
)

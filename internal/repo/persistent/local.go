package persistent

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// LocalPublisher copies files into a directory on the local filesystem and
// returns file:// URLs. Meant for development without a bucket.
type LocalPublisher struct {
	baseDir string
}

// NewLocalPublisher creates baseDir if it does not already exist.
func NewLocalPublisher(baseDir string) (*LocalPublisher, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("LocalPublisher - New - os.MkdirAll: %w", err)
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("LocalPublisher - New - filepath.Abs: %w", err)
	}

	return &LocalPublisher{baseDir: abs}, nil
}

func (p *LocalPublisher) Publish(ctx context.Context, localPath, key, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("LocalPublisher - Publish: %w", err)
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("LocalPublisher - Publish - os.ReadFile: %w", err)
	}

	dest := filepath.Join(p.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("LocalPublisher - Publish - os.MkdirAll: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("LocalPublisher - Publish - os.WriteFile: %w", err)
	}

	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(dest)}

	return u.String(), nil
}

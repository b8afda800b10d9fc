package processor

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/francepatrick/s3-image-uploader/internal/entity"
)

const (
	resizedWidth    = 800
	thumbWidth      = 200
	thumbHeight     = 200
	_defaultQuality = 85
)

type ImageProcessor struct {
	quality int
}

func New(opts ...Option) *ImageProcessor {
	p := &ImageProcessor{quality: _defaultQuality}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Generate decodes the staged original once and writes the resized and
// thumbnail variants, both as JPEG, under the same filename.
func (p *ImageProcessor) Generate(ctx context.Context, original entity.StagedFile, dir entity.StagingDir) (entity.DerivativeSet, error) {
	src, err := imaging.Open(original.Path)
	if err != nil {
		return entity.DerivativeSet{}, fmt.Errorf("ImageProcessor - Generate - imaging.Open: %w", err)
	}

	set := entity.DerivativeSet{
		Original:  original,
		Resized:   entity.StagedFile{Filename: original.Filename, Path: filepath.Join(dir.Resized(), original.Filename)},
		Thumbnail: entity.StagedFile{Filename: original.Filename, Path: filepath.Join(dir.Thumbnail(), original.Filename)},
	}

	resized := imaging.Resize(src, resizedWidth, 0, imaging.Lanczos)
	if err := p.save(resized, set.Resized.Path); err != nil {
		return entity.DerivativeSet{}, fmt.Errorf("ImageProcessor - Generate - resized: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return entity.DerivativeSet{}, fmt.Errorf("ImageProcessor - Generate: %w", err)
	}

	thumb := imaging.Fill(src, thumbWidth, thumbHeight, imaging.Center, imaging.Lanczos)
	if err := p.save(thumb, set.Thumbnail.Path); err != nil {
		return entity.DerivativeSet{}, fmt.Errorf("ImageProcessor - Generate - thumbnail: %w", err)
	}

	return set, nil
}

// save always encodes JPEG; the extension of path is not consulted.
func (p *ImageProcessor) save(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ImageProcessor - save - os.Create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ImageProcessor - save - f.Close: %w", cerr)
		}
	}()

	err = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(p.quality))
	if err != nil {
		return fmt.Errorf("ImageProcessor - save - imaging.Encode: %w", err)
	}

	return nil
}

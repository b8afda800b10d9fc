package processor_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
	"github.com/francepatrick/s3-image-uploader/internal/infrastructure/processor"
)

func stagingDir(t *testing.T) entity.StagingDir {
	t.Helper()

	dir := entity.StagingDir{Root: t.TempDir(), Date: "01-02-2006"}
	for _, r := range entity.Roles {
		require.NoError(t, os.MkdirAll(dir.Path(r), 0o755))
	}

	return dir
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func decodeConfig(t *testing.T, path string) (image.Config, string) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)

	return cfg, format
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantResizedH int
	}{
		{"landscape", 1600, 900, 450},
		{"portrait", 400, 1000, 2000},
		{"square", 300, 300, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := stagingDir(t)
			// PNG bytes under a .jpeg name, as the normalizer produces
			filename := "abc123.jpeg"
			path := filepath.Join(dir.Original(), filename)
			writePNG(t, path, tt.w, tt.h)

			set, err := processor.New().Generate(context.Background(),
				entity.StagedFile{Filename: filename, Path: path}, dir)
			require.NoError(t, err)

			assert.Equal(t, filename, set.Resized.Filename)
			assert.Equal(t, filename, set.Thumbnail.Filename)
			assert.Equal(t, filepath.Join(dir.Resized(), filename), set.Resized.Path)
			assert.Equal(t, filepath.Join(dir.Thumbnail(), filename), set.Thumbnail.Path)

			cfg, format := decodeConfig(t, set.Resized.Path)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, 800, cfg.Width)
			assert.Equal(t, tt.wantResizedH, cfg.Height)

			cfg, format = decodeConfig(t, set.Thumbnail.Path)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, 200, cfg.Width)
			assert.Equal(t, 200, cfg.Height)
		})
	}
}

func TestGeneratePNGExtensionStillJPEG(t *testing.T) {
	dir := stagingDir(t)
	filename := "abc123.png"
	path := filepath.Join(dir.Original(), filename)
	writePNG(t, path, 100, 50)

	set, err := processor.New(processor.Quality(70)).Generate(context.Background(),
		entity.StagedFile{Filename: filename, Path: path}, dir)
	require.NoError(t, err)

	_, format := decodeConfig(t, set.Resized.Path)
	assert.Equal(t, "jpeg", format)
	_, format = decodeConfig(t, set.Thumbnail.Path)
	assert.Equal(t, "jpeg", format)
}

func TestGenerateDecodeFailure(t *testing.T) {
	dir := stagingDir(t)
	path := filepath.Join(dir.Original(), "broken.jpeg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an image"), 0o644))

	_, err := processor.New().Generate(context.Background(),
		entity.StagedFile{Filename: "broken.jpeg", Path: path}, dir)
	require.Error(t, err)

	assert.NoFileExists(t, filepath.Join(dir.Resized(), "broken.jpeg"))
}

func TestGenerateWriteFailureKeepsPartial(t *testing.T) {
	dir := stagingDir(t)
	filename := "partial.jpeg"
	path := filepath.Join(dir.Original(), filename)
	writePNG(t, path, 64, 64)

	// thumbnail target cannot be created
	require.NoError(t, os.RemoveAll(dir.Thumbnail()))
	require.NoError(t, os.WriteFile(dir.Thumbnail(), nil, 0o644))

	_, err := processor.New().Generate(context.Background(),
		entity.StagedFile{Filename: filename, Path: path}, dir)
	require.Error(t, err)

	assert.FileExists(t, filepath.Join(dir.Resized(), filename))
}

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasbasham/cli-runtime/iooption"

	"github.com/francepatrick/s3-image-uploader/config"
	"github.com/francepatrick/s3-image-uploader/internal/entity"
	"github.com/francepatrick/s3-image-uploader/internal/usecase"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
)

type fakeUseCase struct {
	contents []string
	err      error
}

func (f *fakeUseCase) Upload(_ context.Context, contents string) (*entity.PublicationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.contents = append(f.contents, contents)

	return &entity.PublicationResult{
		Original:  "file:///o.jpeg",
		Thumbnail: "file:///t.jpeg",
		Resized:   "file:///r.jpeg",
	}, nil
}

func writeImage(t *testing.T, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if strings.HasSuffix(name, ".png") {
		require.NoError(t, png.Encode(&buf, img))
	} else {
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	return path
}

func newTestOptions(uc *fakeUseCase) (*UploadOptions, *bytes.Buffer) {
	out := &bytes.Buffer{}
	o := NewUploadOptions(iooption.IOStreams{Out: out, ErrOut: &bytes.Buffer{}})
	o.cfg = &config.Config{
		Log:    config.Log{Level: "error"},
		Upload: config.Upload{Timeout: time.Minute},
	}
	o.newUseCase = func(context.Context, *config.Config, logger.Interface) (usecase.UploadUseCase, func(), error) {
		return uc, func() {}, nil
	}

	return o, out
}

func TestDataURI(t *testing.T) {
	pngData, err := os.ReadFile(writeImage(t, "a.png"))
	require.NoError(t, err)
	jpegData, err := os.ReadFile(writeImage(t, "a.jpg"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dataURI(pngData), "data:image/png;base64,iVBOR"))
	assert.True(t, strings.HasPrefix(dataURI(jpegData), "data:image/jpeg;base64,/9j/"))
}

func TestUploadCommandRun(t *testing.T) {
	uc := &fakeUseCase{}
	o, out := newTestOptions(uc)

	a, b := writeImage(t, "a.png"), writeImage(t, "b.jpg")
	require.NoError(t, o.Complete(nil, []string{a, b}))
	require.NoError(t, o.Validate())
	require.NoError(t, o.Run(context.Background()))

	require.Len(t, uc.contents, 2)
	assert.True(t, strings.HasPrefix(uc.contents[0], "data:image/png;base64,"))
	assert.True(t, strings.HasPrefix(uc.contents[1], "data:image/jpeg;base64,"))

	dec := json.NewDecoder(out)
	for _, file := range []string{a, b} {
		var line uploadOutput
		require.NoError(t, dec.Decode(&line))
		assert.Equal(t, uploadOutput{
			File:      file,
			Original:  "file:///o.jpeg",
			Thumbnail: "file:///t.jpeg",
			Resized:   "file:///r.jpeg",
		}, line)
	}
}

func TestUploadCommandNoFiles(t *testing.T) {
	o, _ := newTestOptions(&fakeUseCase{})

	require.NoError(t, o.Complete(nil, nil))
	assert.Error(t, o.Validate())
}

func TestUploadCommandMissingFile(t *testing.T) {
	o, _ := newTestOptions(&fakeUseCase{})

	require.NoError(t, o.Complete(nil, []string{filepath.Join(t.TempDir(), "nope.png")}))
	assert.ErrorContains(t, o.Run(context.Background()), "failed to read")
}

func TestUploadCommandPipelineError(t *testing.T) {
	boom := errors.New("boom")
	o, _ := newTestOptions(&fakeUseCase{err: boom})

	require.NoError(t, o.Complete(nil, []string{writeImage(t, "a.png")}))
	assert.ErrorIs(t, o.Run(context.Background()), boom)
}

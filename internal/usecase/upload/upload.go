package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
	"github.com/francepatrick/s3-image-uploader/internal/infrastructure"
	"github.com/francepatrick/s3-image-uploader/internal/repo"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
	"github.com/francepatrick/s3-image-uploader/pkg/types/errs"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type UseCase struct {
	staging   infrastructure.StagingArea
	generator infrastructure.DerivativeGenerator
	publisher repo.Publisher
	events    infrastructure.EventsSender

	enforceValidation bool
	contentType       string
	now               func() time.Time

	logger logger.Interface
}

func New(
	staging infrastructure.StagingArea,
	generator infrastructure.DerivativeGenerator,
	publisher repo.Publisher,
	l logger.Interface,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		staging:           staging,
		generator:         generator,
		publisher:         publisher,
		enforceValidation: true,
		contentType:       repo.DefaultContentType,
		now:               time.Now,
		logger:            l,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Upload stages contents, derives the resized and thumbnail variants and
// publishes all three. Either every URL is returned or the call fails with
// an *entity.PipelineError. Staged files are never removed.
func (uc *UseCase) Upload(ctx context.Context, contents string) (*entity.PublicationResult, error) {
	// 1. проверяем сигнатуру
	if err := Validate(contents); err != nil {
		if uc.enforceValidation {
			return nil, fail(errs.ErrValidation, err)
		}
		uc.logger.Warn("UseCase - Upload - Validate: %v, continuing", err)
	}

	// 2. дневная директория
	dir, err := uc.staging.EnsureDaily(ctx)
	if err != nil {
		return nil, fail(errs.ErrIO, fmt.Errorf("UseCase - Upload - uc.staging.EnsureDaily: %w", err))
	}

	// 3. пишем оригинал
	payload, ext := Normalize(contents)
	original, err := uc.staging.WriteOriginal(dir, payload, ext)
	if err != nil {
		return nil, fail(errs.ErrIO, fmt.Errorf("UseCase - Upload - uc.staging.WriteOriginal: %w", err))
	}
	uc.logger.Debug("UseCase - Upload - staged %s", original.Path)

	// 4. ресайз и превью
	set, err := uc.generator.Generate(ctx, original, dir)
	if err != nil {
		return nil, fail(errs.ErrProcessing, fmt.Errorf("UseCase - Upload - uc.generator.Generate: %w", err))
	}

	// 5. параллельная публикация
	result, err := uc.publish(ctx, set)
	if err != nil {
		return nil, fail(errs.ErrPublication, err)
	}

	uc.notify(ctx, original.Filename, result)

	return result, nil
}

func (uc *UseCase) publish(ctx context.Context, set entity.DerivativeSet) (*entity.PublicationResult, error) {
	var urls [len(entity.Roles)]string

	g, gctx := errgroup.WithContext(ctx)
	for i, role := range entity.Roles {
		file := set.File(role)
		g.Go(func() error {
			url, err := uc.publisher.Publish(gctx, file.Path, role.Key(file.Filename), uc.contentType)
			if err != nil {
				return fmt.Errorf("UseCase - publish - uc.publisher.Publish(%s): %w", role, err)
			}
			urls[i] = url

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &entity.PublicationResult{}
	for i, role := range entity.Roles {
		result.Set(role, urls[i])
	}

	return result, nil
}

// notify is best-effort; the upload already succeeded.
func (uc *UseCase) notify(ctx context.Context, filename string, result *entity.PublicationResult) {
	if uc.events == nil {
		return
	}

	event := &entity.UploadedEvent{
		ID:        uuid.New(),
		Filename:  filename,
		Original:  result.Original,
		Resized:   result.Resized,
		Thumbnail: result.Thumbnail,
		CreatedAt: uc.now(),
	}

	if err := uc.events.SendUploaded(ctx, event); err != nil {
		uc.logger.Error(err, "UseCase - Upload - uc.events.SendUploaded")
	}
}

func fail(kind, err error) error {
	return &entity.PipelineError{Kind: kind, Err: err}
}

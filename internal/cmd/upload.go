package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomasbasham/cli-runtime/iooption"
	"github.com/tomasbasham/cli-runtime/templates"

	"github.com/francepatrick/s3-image-uploader/config"
	"github.com/francepatrick/s3-image-uploader/internal/app"
	"github.com/francepatrick/s3-image-uploader/internal/usecase"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
)

type UploadOptions struct {
	cfg   *config.Config
	files []string

	// Overridable in tests.
	newUseCase func(ctx context.Context, cfg *config.Config, l logger.Interface) (usecase.UploadUseCase, func(), error)

	iooption.IOStreams
}

// uploadOutput is one line of `uploader upload` output.
type uploadOutput struct {
	File      string `json:"file"`
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Resized   string `json:"resized"`
}

var (
	uploadLong = templates.LongDesc(`
		Upload one or more local PNG/JPEG files through the pipeline and print
		the published URLs as one JSON object per file.`)

	uploadExample = templates.Examples(`
		# Upload a single image
		uploader upload cat.png

		# Upload several images to a local directory instead of S3
		STORAGE_DRIVER=local uploader upload a.jpg b.png`)
)

func NewUploadOptions(streams iooption.IOStreams) *UploadOptions {
	return &UploadOptions{
		newUseCase: func(ctx context.Context, cfg *config.Config, l logger.Interface) (usecase.UploadUseCase, func(), error) {
			return app.NewUploadUseCase(ctx, cfg, l)
		},
		IOStreams: streams,
	}
}

func NewUploadCommand(o *UploadOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "upload FILE...",
		DisableFlagsInUseLine: true,
		Short:                 "Upload images and print their URLs",
		Long:                  uploadLong,
		Example:               uploadExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}

	return cmd
}

func (o *UploadOptions) Complete(cmd *cobra.Command, args []string) error {
	o.files = args

	if o.cfg != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	o.cfg = cfg

	return nil
}

func (o *UploadOptions) Validate() error {
	if len(o.files) == 0 {
		return fmt.Errorf("at least one file is required")
	}
	return nil
}

func (o *UploadOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logger.New(o.cfg.Log.Level)

	uc, closeFn, err := o.newUseCase(ctx, o.cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialise pipeline: %w", err)
	}
	defer closeFn()

	enc := json.NewEncoder(o.Out)

	for _, file := range o.files {
		b, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		uctx, cancel := context.WithTimeout(ctx, o.cfg.Upload.Timeout)
		result, err := uc.Upload(uctx, dataURI(b))
		cancel()
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", file, err)
		}

		if err := enc.Encode(uploadOutput{
			File:      file,
			Original:  result.Original,
			Thumbnail: result.Thumbnail,
			Resized:   result.Resized,
		}); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

// dataURI wraps b the way a browser FileReader would.
func dataURI(b []byte) string {
	return "data:" + http.DetectContentType(b) + ";base64," + base64.StdEncoding.EncodeToString(b)
}

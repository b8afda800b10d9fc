package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/cli-runtime/iooption"
	"github.com/tomasbasham/cli-runtime/templates"

	"github.com/francepatrick/s3-image-uploader/config"
)

var (
	rootLong = templates.LongDesc(`
		Stage PNG/JPEG images, derive an 800px wide copy and a 200x200
		thumbnail, and publish all three to the configured storage.

		Configuration is read from the environment and from .env when present.`)

	// Injected at build time using ldflags.
	version = ""
	commit  = ""
)

type UploaderOptions struct {
	iooption.IOStreams
}

func NewUploaderOptions(streams iooption.IOStreams) *UploaderOptions {
	return &UploaderOptions{
		IOStreams: streams,
	}
}

// NewRootCommand creates the `uploader` command with default arguments.
func NewRootCommand() *cobra.Command {
	options := NewUploaderOptions(iooption.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	return NewRootCommandWithArgs(options)
}

func NewRootCommandWithArgs(o *UploaderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "uploader [command]",
		Version:               versionInfo(),
		DisableFlagsInUseLine: true,
		Short:                 "Image upload pipeline",
		Long:                  rootLong,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}

	cmd.AddCommand(NewUploadCommand(NewUploadOptions(o.IOStreams)))
	cmd.AddCommand(NewServeCommand(NewServeOptions()))

	return cmd
}

func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	return config.New()
}

func versionInfo() string {
	if version == "" {
		return ""
	}
	return fmt.Sprintf("%s (commit: %s)", version, commit)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tomasbasham/cli-runtime/templates"

	"github.com/francepatrick/s3-image-uploader/config"
	"github.com/francepatrick/s3-image-uploader/internal/app"
)

type ServeOptions struct {
	cfg *config.Config

	Port string
}

var (
	serveLong = templates.LongDesc(`Start the upload HTTP server.`)

	serveExample = templates.Examples(`
		# Start on HTTP_PORT (8080 by default)
		uploader serve

		# Override the port
		uploader serve --port 9090`)
)

func NewServeOptions() *ServeOptions {
	return &ServeOptions{}
}

func NewServeCommand(o *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the upload HTTP server",
		Long:    serveLong,
		Example: serveExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().StringVarP(&o.Port, "port", "p", "", "Port to listen on (overrides HTTP_PORT)")

	return cmd
}

func (o *ServeOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if o.Port != "" {
		cfg.HTTP.Port = o.Port
	}
	o.cfg = cfg

	return nil
}

func (o *ServeOptions) Run() error {
	app.Run(o.cfg)

	return nil
}

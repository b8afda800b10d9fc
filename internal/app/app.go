package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/francepatrick/s3-image-uploader/config"
	"github.com/francepatrick/s3-image-uploader/internal/controller/restapi"
	"github.com/francepatrick/s3-image-uploader/pkg/httpserver"
	"github.com/francepatrick/s3-image-uploader/pkg/logger"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Use-Case
	uploadUseCase, closeFn, err := NewUploadUseCase(ctx, cfg, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - NewUploadUseCase: %w", err))
	}
	defer closeFn()

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
		httpserver.ReadTimeout(cfg.Upload.Timeout),
		httpserver.WriteTimeout(cfg.Upload.Timeout),
	)
	restapi.NewRouter(httpServer.App, cfg, uploadUseCase, l)

	// Start Server
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

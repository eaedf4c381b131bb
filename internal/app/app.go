package app

import (
	"context"

	"github.com/KRIPAVERMA/mediabotbackend/internal/config"
	"github.com/KRIPAVERMA/mediabotbackend/internal/extractor"
	"github.com/KRIPAVERMA/mediabotbackend/internal/repository"
	"github.com/KRIPAVERMA/mediabotbackend/internal/server"
	"github.com/KRIPAVERMA/mediabotbackend/internal/service"
	"golang.org/x/sync/errgroup"
)

type App struct {
	conf *config.Config
}

func NewApp(conf *config.Config) *App {
	return &App{
		conf: conf,
	}
}

func (app *App) Run(ctx context.Context) error {
	results, err := repository.NewResultRepository(app.conf.Results.Size)
	if err != nil {
		return err
	}

	svc := service.NewDownloadService(
		extractor.NewYtDlp(app.conf.Downloader.Binary),
		app.conf.Downloader.SocketTimeout,
		app.conf.Downloader.Retries,
	)

	errGroup, errCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return server.NewServer(app.conf, svc, results).Run(errCtx)
	})

	return errGroup.Wait()
}

package main

import (
	"flag"

	"github.com/KRIPAVERMA/mediabotbackend/internal/app"
	"github.com/KRIPAVERMA/mediabotbackend/internal/config"
	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/context"
	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/log"
	_ "go.uber.org/automaxprocs"
)

var flagConfigFile = flag.String("f", "", "path to configuration yaml file")

func main() {
	flag.Parse()

	ctx := context.NewSignalledContext()

	conf, err := config.NewConfig(ctx, *flagConfigFile)
	if err != nil {
		log.Logger.Fatalw("failed to load config", "error", err)
	}

	if err = app.NewApp(conf).Run(ctx); err != nil {
		log.Logger.Fatalw("app exited unexpectedly", "error", err)
	}
}

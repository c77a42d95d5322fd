package main

import (
	"context"
	"errors"
	"os"

	"github.com/fds-bd/fds-server/internal/app"
	"github.com/fds-bd/fds-server/internal/config"
	"github.com/fds-bd/fds-server/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}

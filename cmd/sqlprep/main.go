package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stephenafamo/sqlprep/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	app := newApp(os.Stdin, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger := logging.Logger()
		logger.Error().Err(err).Msg("sqlprep failed")
		os.Exit(1)
	}
}

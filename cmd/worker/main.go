package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lodgehub/config"
	"lodgehub/di"
	"lodgehub/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers := di.InitializeWorker()

	if err := workers.Run(ctx); err != nil {
		log.Error().Err(err).Msg("worker exited with error")
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLoggerTo(os.Stderr)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	maintenance := di.InitializeMaintenance()

	if err := maintenance.Runner(ctx, helper.ActionInit); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise tables")
	}

	if cfg.Storage.ReconcileOnStart {
		if err := maintenance.Runner(ctx, helper.ActionReconcile); err != nil {
			log.Warn().Err(err).Msg("Startup reconciliation failed, continuing")
		}
	}

	if err := di.InitializeConsole().Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Front desk console stopped")
	}
}

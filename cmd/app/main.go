package main

import (
	"context"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	maintenance := di.InitializeMaintenance()

	if err := maintenance.Runner(context.Background(), helper.ActionInit); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise tables")
	}

	if cfg.Storage.ReconcileOnStart {
		if err := maintenance.Runner(context.Background(), helper.ActionReconcile); err != nil {
			log.Warn().Err(err).Msg("Startup reconciliation failed, serving anyway")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

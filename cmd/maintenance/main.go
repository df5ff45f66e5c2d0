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

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msgf("Action is required, use %s, %s, %s or %s",
			helper.ActionInit, helper.ActionReconcile, helper.ActionBackup, helper.ActionTail)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := di.InitializeMaintenance().Runner(ctx, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Maintenance failed")
	}
}

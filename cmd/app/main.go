package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"harborview/config"
	"harborview/di"
	"harborview/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	seeder := di.InitializeSeeder()
	if err := seeder.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to seed database")
	}

	http := di.InitializeService()
	http.Serve()
}

package main

import (
	"sharedhouse/config"
	"sharedhouse/di"
	"sharedhouse/helper"
	"sharedhouse/shared/logger"

	"github.com/rs/zerolog/log"

	_ "sharedhouse/docs"
)

// @title Shared House Booking API
// @version 1.0
// @description Booking of shared spaces (music theater, gym, bath) for the residents of a shared house.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

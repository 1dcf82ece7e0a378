package main

import (
	"os"
	"sharedhouse/config"
	"sharedhouse/helper"
	"sharedhouse/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

// Usage: migrate up|down|drop|step-up
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required. Use 'up', 'down', 'drop' or 'step-up'")
	}

	action := os.Args[1]

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}

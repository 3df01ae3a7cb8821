package main

import (
	"todoapi/config"
	"todoapi/di"
	_ "todoapi/docs"
	"todoapi/helper"
	"todoapi/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Todo API
// @version 1.0
// @description CRUD service for todo items. Every response is wrapped in {"success": ..., "error": ...}.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetFormat(cfg)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

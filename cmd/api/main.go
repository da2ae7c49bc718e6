package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emre/innohub/internal/pkg/logger"
	"github.com/emre/innohub/internal/server"
)

// @title InnoHub API
// @version 1.0
// @description API for the college innovation hub: events, registrations, startup portfolio and incubation applications

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// A .env file is optional; environment variables may come from anywhere
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

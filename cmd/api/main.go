package main

import (
	"os"

	"github.com/derya/learnhub/internal/pkg/logger"
	"github.com/derya/learnhub/internal/server"
)

// @title LearnHub API
// @version 1.0
// @description REST API for the LearnHub online learning platform

// @contact.name API Support
// @contact.email support@learnhub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

package main

import (
	"os"

	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
	"github.com/pragati-coe/facultyhub/internal/server"
)

// @title FacultyHub API
// @version 1.0
// @description Faculty records and research output backend for Pragati College of Engineering

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
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

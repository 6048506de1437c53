package main

import (
	"os"

	"github.com/akshay/schoolms/internal/pkg/logger"
	"github.com/akshay/schoolms/internal/server"
)

// @title School Management System API
// @version 1.0
// @description Administrative API for courses, student enrollment, and fee tracking

// @contact.name API Support
// @contact.email support@schoolms.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by the login endpoint

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
	os.Exit(0)
}

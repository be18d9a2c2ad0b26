package main

import (
	"context"
	"errors"
	"os"

	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/logger"
	"github.com/yigit/records/internal/server"
)

// @title Academic Records API
// @version 1.0
// @description Students, grades and lecturers held across a relational and a document store
// @BasePath /api/v1

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		if errors.Is(err, apperrors.ErrConnection) {
			logger.Error().Err(err).Msg("Could not reach a database, exiting")
		} else {
			logger.Error().Err(err).Msg("Failed to initialize server")
		}
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/contractors/internal/pkg/logger"
	"github.com/yigit/contractors/internal/server"
)

// @title Contractor Management System API
// @version 1.0
// @description Read-only lookup of contractor personnel records.

// @host localhost:5000
// @BasePath /api
// @schemes http

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", configPathFromEnv(), "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
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

func configPathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}

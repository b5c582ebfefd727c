package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

// Load reads an optional .env file and installs the logger.
// A missing .env file or a bad log level never prevents a calculation.
func (as *AppConfig) Load() {
	if err := env.LoadDotEnv(as.ENV, "cmd/calc/.env"); err != nil {
		slog.Debug("Continuing with existing environment variables", "error", err)
	}

	if err := env.SetupLogger(); err != nil {
		slog.Warn("Falling back to info log level", "error", err)
	}
}

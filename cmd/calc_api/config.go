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

type CalcApiConfig struct {
	ProbeTokens []string
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	if err := env.SetupLogger(); err != nil {
		slog.Error("Failed to configure logger", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		ProbeTokens: []string{"2", "+", "3", "x", "4"},
	}, nil
}

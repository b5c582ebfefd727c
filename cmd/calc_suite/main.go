package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calc/internal/calculator"
	"github.com/DjordjeVuckovic/calc/internal/suite"
	"github.com/DjordjeVuckovic/calc/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	if err := env.SetupLogger(); err != nil {
		slog.Warn("Falling back to info log level", "error", err)
	}

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	r := suite.NewRunner(suite.Config{Workers: cfg.Workers}, calculator.New())
	result, err := r.Run(context.Background(), s)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		os.Exit(1)
	}

	suite.WriteTable(result, os.Stdout)

	if cfg.Output != "" {
		if err := suite.WriteJSON(result, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if result.Failed > 0 {
		os.Exit(1)
	}
}

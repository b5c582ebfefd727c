// Package main Calc API
// @title Calc API
// @version 1.0
// @description Integer calculator over pre-split tokens with operator precedence and checked arithmetic
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/calc/internal/api/docs"
	"github.com/DjordjeVuckovic/calc/internal/api/router"
	"github.com/DjordjeVuckovic/calc/internal/api/server"
	"github.com/DjordjeVuckovic/calc/internal/calculator"
	pkgserver "github.com/DjordjeVuckovic/calc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	calc := calculator.New()

	healthChecker := pkgserver.NewProbeHealthChecker(func(context.Context) error {
		_, err := calc.Evaluate(cfg.ProbeTokens)
		return err
	})

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Calc API is running")
	})

	router.NewCalcRouter(s.Echo, calc).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

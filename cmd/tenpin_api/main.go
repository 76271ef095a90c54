// Package main Tenpin API
// @title Tenpin API
// @version 1.0
// @description A ten-pin bowling scoring service for calculating and archiving game results
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/kegelbahn/tenpin/docs"
	"github.com/kegelbahn/tenpin/internal/router"
	"github.com/kegelbahn/tenpin/internal/server"
	"github.com/kegelbahn/tenpin/internal/storage/factory"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig("cmd/tenpin_api/.env")
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	backend, err := factory.NewBackend(context.Background(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	s := server.New(sCfg, backend.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/healthz").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Tenpin API is running")
	})

	router.NewScoreRouter(s.Echo, s.Metrics()).Bind()
	router.NewGamesRouter(s.Echo, backend.Storer, backend.Reader, s.Metrics()).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

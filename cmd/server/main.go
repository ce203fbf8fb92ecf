// Package main implements the entry point of the car marketplace API
// server: configuration, logging, database migrations, the initial admin
// seed and the HTTP server lifecycle.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/andreluoliveira82/car-api/internal/config"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logr := logger.Setup(cfg.Server)
	logr.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, logr)
	if err != nil {
		return err
	}
	defer app.cleanup()

	ctx := context.Background()

	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	if err := app.runMigrations(ctx); err != nil {
		return err
	}

	if err := app.seedAdmin(ctx); err != nil {
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

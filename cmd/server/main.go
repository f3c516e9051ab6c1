// Package main implements the entry point for the tasktrack server, a
// per-user task tracker exposing a task lifecycle API over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/jmvillal/tasktrack/internal/config"
	"github.com/jmvillal/tasktrack/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run migrations (up|down|status) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cache_enabled", cfg.Cache.Enabled)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := app.runMigrations(*migrateCmd); err != nil {
			app.cleanup()
			log.Fatalf("Migration failed: %v", err)
		}
		app.cleanup()
		return
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

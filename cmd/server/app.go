package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jmvillal/tasktrack/internal/config"
	"github.com/jmvillal/tasktrack/internal/platform/postgres"
	rediscache "github.com/jmvillal/tasktrack/internal/platform/redis"
	"github.com/jmvillal/tasktrack/internal/service"
	"github.com/jmvillal/tasktrack/internal/store"
)

// application holds the assembled dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	cache       *rediscache.TaskCache // nil when caching is disabled
	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication wires stores, cache, and services from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	taskStore := postgres.NewPostgresTaskStore(db, logger)

	var cache *rediscache.TaskCache
	if cfg.Cache.Enabled {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.Cache.Addr})
		cache = rediscache.NewTaskCache(client, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		logger.Info("Task cache enabled", "addr", cfg.Cache.Addr)
	}

	var serviceCache service.TaskCache
	if cache != nil {
		serviceCache = cache
	}

	taskService, err := service.NewTaskService(taskStore, serviceCache, logger)
	if err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		cache:       cache,
		taskStore:   taskStore,
		taskService: taskService,
	}, nil
}

// cleanup releases the application's external resources.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("Failed to close cache", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database", "error", err)
		}
	}
}

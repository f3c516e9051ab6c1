package main

import (
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/jmvillal/tasktrack/migrations"
)

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "source", "goose")
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "source", "goose")
}

// runMigrations executes the given goose command (up, down, or status)
// against the embedded migration files.
func (app *application) runMigrations(command string) error {
	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	app.logger.Info("Running migrations", "command", command)

	switch command {
	case "up":
		return goose.Up(app.db, ".")
	case "down":
		return goose.Down(app.db, ".")
	case "status":
		return goose.Status(app.db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}

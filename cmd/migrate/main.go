// Command migrate creates or updates the database schema and exits.
package main

import (
	"log/slog"
	"os"

	"multipost/config"
	logs "multipost/internal/infra/log"
	"multipost/internal/infra/persistence/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Schema is up to date", slog.String("driver", cfg.Database.Driver))
}

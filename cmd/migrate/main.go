// Command migrate applies the schema to the configured database and exits.
package main

import (
	"log/slog"
	"os"

	"portfolio_backend/internal/app/di"
	"portfolio_backend/internal/platform/config"
	"portfolio_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()
	cfg.DB.RunMigrations = true

	gdb, err := db.OpenDB(cfg.DB, di.Models()...)
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := db.Close(gdb); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
	slog.Info("migrate ok")
}

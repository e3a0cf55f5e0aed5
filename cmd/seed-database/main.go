package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/architect/skillforge/internal/common/database"
	"github.com/architect/skillforge/internal/tracking/repository"
	"github.com/architect/skillforge/internal/tracking/services"
	"github.com/architect/skillforge/internal/tracking/starter"
	"github.com/architect/skillforge/pkg/config"
	"github.com/architect/skillforge/pkg/logger"
)

func main() {
	var (
		dbType = flag.String("db-type", "", "Database type: sqlite or postgres (overrides env)")
		dbPath = flag.String("output", "", "SQLite database path (overrides env)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbType != "" {
		cfg.Database.Type = *dbType
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
		cfg.Database.DSN = *dbPath + "?mode=rwc&timeout=5000"
	}

	if err := logger.Init(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		return
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", zap.Error(err))
		return
	}

	tracker := services.NewTracker(repository.New(db))
	seeder := starter.NewContentSeeder(tracker, logger.L())

	if err := seeder.SeedIfEmpty(context.Background()); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return
	}

	logger.Info("database ready",
		zap.String("type", cfg.Database.Type),
		zap.String("path", cfg.Database.Path),
		zap.Int("schema_version", database.SchemaVersion),
	)
}

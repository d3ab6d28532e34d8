package main

import (
	"context"
	"flag"
	"log"
	"time"

	"quiz-lens/internal/config"
	"quiz-lens/internal/database"
	"quiz-lens/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "database/migrations", "directory holding *.up.sql files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if !cfg.DatabaseEnabled() {
		l.Fatal("Database is not configured; set db.host and db.user or DB_HOST and DB_USER")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewMigrateOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, *dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err), zap.String("dir", *dir))
	}
	l.Info("Migrations applied", zap.String("dir", *dir))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/pkg/config"
	"github.com/chainsafe/cryptoballot/pkg/migrations/appdb"
	"github.com/chainsafe/cryptoballot/pkg/pgutil"
	mghelper "github.com/chainsafe/cryptoballot/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading configuration file: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error setting up logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations for CryptoBallot database", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, appdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Arg(0)); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cfb-nil-service/config"
	dbconnection "cfb-nil-service/db_connection"
	"cfb-nil-service/server"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cfb-nil-service",
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := dbconnection.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations failed", "err", err)
	}

	store, db, err := dbconnection.NewDBConnection(cfg.DatabaseURL, cfg.CacheModeled, logger)
	if err != nil {
		logger.Fatal("database connection failed", "err", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, store)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

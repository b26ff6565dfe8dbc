// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/database/redis"
	httpserver "github.com/your-org/hardware-store-backend/internal/interfaces/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	setupLogging(cfg)

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}
	if err := db.CreateIndexes(); err != nil {
		logrus.WithError(err).Fatal("Failed to create indexes")
	}
	if cfg.IsDevelopment() {
		if err := db.SeedInitialData(); err != nil {
			logrus.WithError(err).Fatal("Failed to seed initial data")
		}
	}

	if info, err := db.GetTableInfo(); err != nil {
		logrus.WithError(err).Warn("Failed to read table info")
	} else {
		logrus.WithField("tables", info).Info("Database ready")
	}

	cache, err := redis.NewClient(cfg)
	if err != nil {
		// the API degrades without redis: no rate limiting, no catalog cache
		logrus.WithError(err).Warn("Redis unavailable, continuing without it")
		cache = nil
	} else {
		defer cache.Close()
	}

	server, err := httpserver.NewServer(cfg, db, cache)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create server")
	}

	go func() {
		if err := server.Start(); err != nil {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("Forced shutdown")
	}
	logrus.Info("Server stopped")
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"margent-backend/internal/config"
	"margent-backend/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	st, closeStore, err := config.NewStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.Seed(ctx, st); err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}

	logrus.Infof("Store seeded with default datasets (driver %s, prefix %s)", cfg.StoreDriver, cfg.StorePrefix)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/pkg/logger"
)

func main() {
	command := flag.String("command", database.MigrateUp, "migration command: up, down, status, reset")
	flag.Parse()

	if err := run(*command); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("Migration failed")
	}
}

func run(command string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closer := logger.Init(logger.Options{Env: cfg.App.Environment, Level: cfg.Log.Level})
	defer closer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db.Pool, command); err != nil {
		return err
	}
	log.Info().Str("command", command).Msg("Migration finished")
	return nil
}

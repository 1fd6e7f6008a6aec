package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
	"library-api/internal/infrastructure/database"
	"library-api/internal/seed"
	"library-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Seed failed")
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closer := logger.Init(logger.Options{Env: cfg.App.Environment, Level: cfg.Log.Level})
	defer closer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	authors := authorService.NewAuthorService(authorRepo.NewPostgresRepository(db.Pool))
	books := bookService.NewBookService(bookRepo.NewPostgresRepository(db.Pool))

	_, err = seed.Run(ctx, authors, books)
	return err
}

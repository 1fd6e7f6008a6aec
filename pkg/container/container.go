package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/internal/infrastructure/metrics"
	"library-api/pkg/logger"

	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"
	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
)

const connectTimeout = 30 * time.Second

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every application dependency. Fields are populated in
// layer order by NewContainer.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config  *config.Config
	DB      *database.PostgresDB
	Metrics *metrics.HTTP
	logFile io.Closer

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config, logger, database (plus optional migrations), metrics,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// STEP 2: LOGGER
	// ========================================
	c.logFile = logger.Init(logger.Options{
		Env:        cfg.App.Environment,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().Str("env", cfg.App.Environment).Str("version", cfg.App.Version).Msg("Initializing container")

	// ========================================
	// STEP 3: INITIALIZE DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if cfg.App.AutoMigrate {
		if err := database.Migrate(ctx, db.Pool, database.MigrateUp); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("Migrations applied")
	}

	c.Metrics = metrics.New("library_api")

	// ========================================
	// STEP 4-6: DOMAIN LAYERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.BookService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases the database pool and the log file.
// Safe to call on a partially built container.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		} else {
			log.Info().Msg("Database connections closed")
		}
	}

	if c.logFile != nil {
		_ = c.logFile.Close()
	}
}

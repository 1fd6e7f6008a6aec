package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"library-api/internal/infrastructure/database"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database *database.DBConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	APIPrefix   string
	AutoMigrate bool
}

type LogConfig struct {
	Level      string
	File       string // empty: stderr only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	autoMigrate, err := getEnvBool("DB_AUTO_MIGRATE", false)
	if err != nil {
		return nil, err
	}
	maxSize, err := getEnvInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	maxBackups, err := getEnvInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := getEnvInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			APIPrefix:   strings.TrimRight(getEnv("API_PREFIX", "/api"), "/"),
			AutoMigrate: autoMigrate,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  maxSize,
			MaxBackups: maxBackups,
			MaxAgeDays: maxAge,
		},
		Database: dbConfig,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Validate checks the settings that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.Database == nil || c.Database.Password == "") {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	if c.App.APIPrefix != "" && !strings.HasPrefix(c.App.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with \"/\", got %q", c.App.APIPrefix)
	}
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("APP_PORT must be numeric, got %q", c.App.Port)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

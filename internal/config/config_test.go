package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/infrastructure/database"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "API_PREFIX", "DB_AUTO_MIGRATE", "LOG_FILE", "DB_PORT", "DB_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "/api", cfg.App.APIPrefix)
	assert.False(t, cfg.App.AutoMigrate)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("API_PREFIX", "/v1/")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_MAX_CONN_LIFETIME", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "/v1", cfg.App.APIPrefix)
	assert.True(t, cfg.App.AutoMigrate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30*time.Minute, cfg.Database.MaxConnLifetime)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"DB_PORT":            "five",
		"DB_CONNECT_TIMEOUT": "soon",
		"DB_AUTO_MIGRATE":    "perhaps",
		"LOG_MAX_BACKUPS":    "many",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{Environment: "production", Port: "8080", APIPrefix: "/api"},
		Database: &database.DBConfig{},
	}
	assert.ErrorContains(t, cfg.Validate(), "DB_PASSWORD")

	cfg.Database.Password = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.App.APIPrefix = "api"
	assert.ErrorContains(t, cfg.Validate(), "API_PREFIX")
}

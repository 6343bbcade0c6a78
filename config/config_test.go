package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CatalogTTL)
	assert.Equal(t, time.Minute, cfg.Cache.SummaryTTL)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "APP_PORT=9090\nDB_NAME=lessons\nDB_AUTO_MIGRATE=true\nCACHE_CATALOG_TTL=30s\nREDIS_DB=2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_NAME", "from_env")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "from_env", cfg.DB.Name)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 30*time.Second, cfg.Cache.CatalogTTL)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestLoadConfigFrom_BadTTLFallsBack(t *testing.T) {
	t.Setenv("CACHE_SUMMARY_TTL", "soon")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Cache.SummaryTTL)
}

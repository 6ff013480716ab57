package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "/api", cfg.App.BasePath)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "admin@storerating.com", cfg.Bootstrap.AdminEmail)
	assert.Equal(t, "Admin123!", cfg.Bootstrap.AdminPassword)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nPORT=9090\nDB_NAME=ratings\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, "ratings", cfg.Database.Name)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSOrigins)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "store_rating_db",
		User:     "postgres",
		Password: "p@ss word",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://postgres:p%40ss%20word@db:5432/store_rating_db?sslmode=disable", cfg.DSN())
}

func TestNormalizeBasePath(t *testing.T) {
	assert.Equal(t, "", normalizeBasePath(""))
	assert.Equal(t, "", normalizeBasePath("/"))
	assert.Equal(t, "/api", normalizeBasePath("api"))
	assert.Equal(t, "/api", normalizeBasePath("/api/"))
	assert.Equal(t, "/v1/api", normalizeBasePath(" /v1/api "))
}

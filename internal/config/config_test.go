package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_FileThenEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  env: production
database:
  url: postgres://file/agm
jwt:
  secret: from-file
cors:
  allowed_origins: ["https://a.example"]
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://b.example,https://c.example")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "postgres://file/agm", cfg.Database.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 60, cfg.JWT.TTL)
	assert.Equal(t, ":9000", cfg.Addr())
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/agm")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/agm")
	t.Setenv("JWT_SECRET", "s")

	_, err := LoadFrom(writeConfig(t, ""))
	require.NoError(t, err)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s")
	_, err := LoadFrom(writeConfig(t, "server:\n  port: 8080\n"))
	assert.ErrorContains(t, err, "database url is required")

	t.Setenv("DATABASE_URL", "postgres://env/agm")
	t.Setenv("JWT_SECRET", "")
	_, err = LoadFrom(writeConfig(t, ""))
	assert.ErrorContains(t, err, "jwt secret is required")

	t.Setenv("JWT_SECRET", "s")
	t.Setenv("SERVER_PORT", "70000")
	_, err = LoadFrom(writeConfig(t, ""))
	assert.ErrorContains(t, err, "invalid server port")

	_, err = LoadFrom(writeConfig(t, "server: [not a map"))
	assert.ErrorContains(t, err, "parse")
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prudhivi99/shop-manager/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeFile(t, "shop.yaml", `
server:
  port: 8080
  static_dir: ./public
redis:
  enabled: true
  ttl: 1m
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./public", cfg.Server.StaticDir)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeFile(t, "shop.yaml", "server:\n  port: 8080\n")
	t.Setenv("SHOP_SERVER_PORT", "9090")
	t.Setenv("SHOP_DATABASE_HOST", "db.internal")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoad_RejectsInvalidPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHOP_SERVER_PORT", "0")

	_, err := config.Load("")
	assert.ErrorContains(t, err, "server.port must be positive")
}

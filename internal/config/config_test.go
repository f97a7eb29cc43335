package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the remaining values come from defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
		assert.Equal(t, 24*time.Hour, conf.Storage.SessionTTL)
		assert.Equal(t, 10*time.Second, conf.HTTP.ReadTimeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		// Given: a config file selecting redis storage
		path := writeConfig(t, `
http-port: "8080"
storage:
  driver: redis
  session-ttl: 1h
redis:
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every section is filled from the file
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, time.Hour, conf.Storage.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: loading it
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects unknown storage driver", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: sqlite\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage driver")
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

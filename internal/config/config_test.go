package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// When: loading from a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "pvp", conf.Mode)
		assert.Equal(t, 300*time.Millisecond, conf.ComputerDelay)
		assert.Equal(t, DriverFile, conf.Storage.Driver)
		assert.Equal(t, "xo_scores", conf.Storage.Key)
		assert.Empty(t, conf.Storage.File)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
mode: pvc
computer-delay: 50ms
storage:
  driver: redis
  key: scores:test
redis:
  host: cache
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "pvc", conf.Mode)
		assert.Equal(t, 50*time.Millisecond, conf.ComputerDelay)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "scores:test", conf.Storage.Key)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: redis\n"), 0o600))
		t.Setenv("TICTACTOE_STORAGE_DRIVER", DriverMemory)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, DriverMemory, conf.Storage.Driver)
	})

	t.Run("Zero delay from the environment", func(t *testing.T) {
		t.Setenv("TICTACTOE_COMPUTER_DELAY", "0s")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Zero(t, conf.ComputerDelay)
	})

	t.Run("Broken YAML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [debug"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "", (&Redis{Host: "", Port: "6379"}).GetRedisAddr())
	assert.Equal(t, "redis:6379", (&Redis{Host: "redis", Port: "6379"}).GetRedisAddr())
}

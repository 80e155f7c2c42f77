package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[development]
port = 9090
log_level = "debug"
storage = "memory"

[production]
host = "0.0.0.0"
port = 80
log_level = "warn"
logs_path = "/var/log/weighttrend/server"
storage = "csv"
data_file = "/data/weights.csv"
settings_file = "/data/settings.toml"
unit = "lb"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"ADDR", "DATABASE_URL", "DATA_FILE", "SETTINGS_FILE", "WEB_DIR"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Development(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("dev", writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "weights.csv", cfg.DataFile, "default kept")
	assert.Equal(t, "kg", cfg.Unit)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_Production(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("production", writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:80", cfg.Addr())
	assert.Equal(t, "/var/log/weighttrend/server", cfg.LogsPath)
	assert.False(t, cfg.LogToStdout)
	assert.Equal(t, "/data/settings.toml", cfg.SettingsFile)
	assert.Equal(t, "lb", cfg.Unit)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("dev", filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", "127.0.0.1:7000")
	t.Setenv("DATA_FILE", "/tmp/w.csv")
	t.Setenv("DATABASE_URL", "postgres://localhost/weights")

	cfg, err := Load("dev", writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr())
	assert.Equal(t, "/tmp/w.csv", cfg.DataFile)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://localhost/weights", cfg.DatabaseURL)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load("staging", writeConfig(t, sample))
	assert.ErrorContains(t, err, "unknown env")

	_, err = Load("dev", writeConfig(t, "[development\nport = 1"))
	assert.ErrorContains(t, err, "decode config")

	_, err = Load("dev", writeConfig(t, "[development]\nstorage = \"sqlite\"\n"))
	assert.ErrorContains(t, err, "unknown storage")

	_, err = Load("dev", writeConfig(t, "[development]\nstorage = \"postgres\"\n"))
	assert.ErrorContains(t, err, "database_url")

	_, err = Load("dev", writeConfig(t, "[development]\nunit = \"stone\"\n"))
	assert.Error(t, err)

	t.Setenv("ADDR", "localhost")
	_, err = Load("dev", writeConfig(t, sample))
	assert.ErrorContains(t, err, "ADDR")
}

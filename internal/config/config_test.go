package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Empty(t, cfg.Schema.ExtensionsFile)
	assert.Equal(t, ',', cfg.Delimiter())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POCKETLEDGER_SERVER_PORT", "9090")
	t.Setenv("POCKETLEDGER_CSV_DELIMITER", ";")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ';', cfg.Delimiter())
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	t.Setenv("POCKETLEDGER_CSV_DELIMITER", ";;")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("POCKETLEDGER_LOG_LEVEL", "shout")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := ConfigureLogging()
	assert.Equal(t, "debug", logger.GetLevel().String())

	// An unknown level falls back to info rather than failing startup.
	t.Setenv("LOG_LEVEL", "shout")
	logger = ConfigureLogging()
	assert.Equal(t, "info", logger.GetLevel().String())
}

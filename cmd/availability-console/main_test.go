package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaimyh/goavail/pkg/config"
)

func TestNewZerolog_JSONFormat(t *testing.T) {
	var out bytes.Buffer
	zlog := newZerolog(config.ConsoleConfig{LogLevel: "warn", LogFormat: "json"}, &out)

	zlog.Info().Msg("dropped")
	zlog.Warn().Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, serviceName, entry["service"])
}

func TestNewZerolog_UnknownLevelFallsBackToInfo(t *testing.T) {
	var out bytes.Buffer
	zlog := newZerolog(config.ConsoleConfig{LogLevel: "chatty", LogFormat: "json"}, &out)

	zlog.Debug().Msg("dropped")
	assert.Empty(t, out.String())

	zlog.Info().Msg("kept")
	assert.Contains(t, out.String(), `"message":"kept"`)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9999\"\nlocale: zh\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "zh", cfg.Locale)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

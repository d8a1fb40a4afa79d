// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Seed.Demo)
	assert.Empty(t, cfg.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\nlog:\n  level: debug\nseed:\n  demo: true\n"), 0o644))
	t.Setenv("ARC_SHELF_LOG_FORMAT", "json")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Seed.Demo)
	assert.Equal(t, path, cfg.File)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, err := NewLoader(path).Load()
	assert.ErrorContains(t, err, "unknown log level")
}

func TestYAMLRoundTripsSettings(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Bind: "0.0.0.0", Port: 8081},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}

	out, err := cfg.YAML()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg.Server, back.Server)
	assert.Equal(t, cfg.Log, back.Log)
}

func TestNewLoggerHonoursLevelVar(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := NewLogger(&buf, LogConfig{Level: "warn", Format: "json"}, level)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelInfo)
	logger.Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

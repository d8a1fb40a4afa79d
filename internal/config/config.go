// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads arc-shelf settings from defaults, an optional YAML
// file and ARC_SHELF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ARC_SHELF"

// Config is the effective configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Seed   SeedConfig   `mapstructure:"seed" yaml:"seed"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

type ServerConfig struct {
	Bind string `mapstructure:"bind" yaml:"bind"`
	Port int    `mapstructure:"port" yaml:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text, json
}

type SeedConfig struct {
	Demo bool `mapstructure:"demo" yaml:"demo"` // preload sample books
}

// Loader wraps a viper instance so commands can bind flags before Load.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader reading path, or the default location when
// path is empty.
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetDefault("server.bind", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("seed.demo", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
	}
	return &Loader{v: v}
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the config file, if any, and decodes the result. A missing
// default config file is not an error.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = l.v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch calls fn with the reloaded config every time the config file
// changes. Invalid reloads are logged and skipped. It does nothing when no
// file was read.
func (l *Loader) Watch(logger *slog.Logger, fn func(*Config)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			logger.Warn("config reload rejected", "file", e.Name, "err", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name)
		fn(cfg)
	})
	l.v.WatchConfig()
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (choose text or json)", c.Log.Format)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	return nil
}

// Addr is the listen address of the web server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

// DefaultDir is $XDG_CONFIG_HOME/arc-shelf, falling back to ~/.config/arc-shelf.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "arc-shelf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "arc-shelf")
}

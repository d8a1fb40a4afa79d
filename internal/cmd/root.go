// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

// App carries what every command needs. It is filled in by the root
// command before any subcommand runs. The store is created once per
// process; a process is one session.
type App struct {
	Loader *config.Loader
	Config *config.Config
	Level  *slog.LevelVar
	Logger *slog.Logger
	Store  *library.Store
}

// flagKeys maps command flags onto config keys so a set flag wins over
// env and file values.
var flagKeys = map[string]string{
	"bind": "server.bind",
	"port": "server.port",
}

// NewRootCmd creates the root command for arc-shelf.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "arc-shelf",
		Short: "Track a small library's book inventory",
		Long: `Keep track of the books on a small library's shelf for one session.

arc-shelf lets you:
- Add books with title, author, genre, year and page count
- Search by title, author, genre or pages
- Check books out and return them
- Edit and remove books

State lives in memory only. Use 'serve' for the browser view or
'shell' for an interactive terminal session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, configPath)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("ARC_SHELF_CONFIG"),
		"Config file (default $XDG_CONFIG_HOME/arc-shelf/config.yaml)")

	root.AddCommand(newWebCmd(app))
	root.AddCommand(newShellCmd(app))
	root.AddCommand(newConfigCmd(app))

	return root
}

// load reads the configuration for cmd and builds the logger and store.
func (app *App) load(cmd *cobra.Command, configPath string) error {
	loader := config.NewLoader(configPath)
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := loader.Viper().BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := new(slog.LevelVar)
	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Log, level)
	slog.SetDefault(logger)

	app.Loader = loader
	app.Config = cfg
	app.Level = level
	app.Logger = logger

	if app.Store == nil {
		app.Store = library.NewStore(library.WithLogger(logger))
		if cfg.Seed.Demo {
			ctx := context.Background()
			for _, fields := range library.DemoBooks() {
				app.Store.Dispatch(ctx, library.NewAddBook(fields))
			}
		}
	}
	return nil
}

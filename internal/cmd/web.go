// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/web"
)

func newWebCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web UI server",
		Long: `Start the browser interface for this session.

The inventory lives as long as the server process. Changes to log.level
in the config file are applied without a restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Loader.Watch(app.Logger, func(cfg *config.Config) {
				if lvl, err := config.ParseLevel(cfg.Log.Level); err == nil {
					app.Level.Set(lvl)
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(app.Store, app.Logger)
			defer srv.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Starting arc-shelf web server on http://%s\n", app.Config.Addr())
			fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

			return srv.Run(ctx, app.Config.Addr())
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "Port to serve on (overrides server.port)")
	cmd.Flags().StringP("bind", "b", "127.0.0.1", "Address to bind to (overrides server.bind)")

	return cmd
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Config.YAML()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if app.Config.File != "" {
				fmt.Fprintf(w, "# %s\n", app.Config.File)
			} else {
				fmt.Fprintln(w, "# defaults (no config file found)")
			}
			_, err = w.Write(out)
			return err
		},
	}
}

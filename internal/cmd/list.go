// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(sess *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Long: `List every book on the shelf, split into available and checked out.

Examples:
  list             # Table of both lists
  list -o json     # JSON
  list -o yaml     # YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess.view.SetSearch("")
			page := sess.view.Page()

			if page.Stats.Total == 0 && (format == OutputTable || format == "") {
				fmt.Fprintln(cmd.OutOrStdout(), "No books on the shelf.")
				fmt.Fprintln(cmd.OutOrStdout(), "Use 'add --title <title> --author <author>' to add one.")
				return nil
			}
			return printPage(cmd.OutOrStdout(), format, page)
		},
	}

	addOutputFlag(cmd, &format)
	return cmd
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(sess *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search books",
		Long: `Search titles, authors and genres (case-insensitive) and page counts.

Examples:
  search herbert
  search "science fiction"
  search 412 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			sess.view.SetSearch(query)
			page := sess.view.Page()

			if len(page.Available)+len(page.CheckedOut) == 0 && (format == OutputTable || format == "") {
				fmt.Fprintf(cmd.OutOrStdout(), "No books found matching %q\n", query)
				return nil
			}
			return printPage(cmd.OutOrStdout(), format, page)
		},
	}

	addOutputFlag(cmd, &format)
	return cmd
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/view"
)

func newAddCmd(sess *session) *cobra.Command {
	var d view.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Add a book to the shelf. Title and author are required.

Examples:
  add --title Dune --author "Frank Herbert"
  add -t Emma -a "Jane Austen" --genre romance --year 1815 --pages 474`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sess.view.Submit(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q by %s\n", view.ShortID(id), d.Title, d.Author)
			return nil
		},
	}

	cmd.Flags().StringVarP(&d.Title, "title", "t", "", "Book title (required)")
	cmd.Flags().StringVarP(&d.Author, "author", "a", "", "Book author (required)")
	cmd.Flags().StringVarP(&d.Genre, "genre", "g", "", "Genre")
	cmd.Flags().StringVarP(&d.Year, "year", "y", "", "Publication year")
	cmd.Flags().StringVarP(&d.Pages, "pages", "p", "", "Page count")

	return cmd
}

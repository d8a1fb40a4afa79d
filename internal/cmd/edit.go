// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

func newEditCmd(sess *session) *cobra.Command {
	var (
		title, author, genre, year, pages string
		available                         bool
	)

	cmd := &cobra.Command{
		Use:   "edit <book-id>",
		Short: "Change fields of a book",
		Long: `Change any subset of a book's fields. Fields not given are kept.

Examples:
  edit 1f3a --genre "science fiction"
  edit 1f3a --year 1965 --pages 412
  edit 1f3a --author ""              # Clear a field`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sess.resolve(args[0])
			if err != nil {
				return err
			}

			var patch library.BookPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = library.String(title)
			}
			if flags.Changed("author") {
				patch.Author = library.String(author)
			}
			if flags.Changed("genre") {
				patch.Genre = library.String(genre)
			}
			if flags.Changed("year") {
				patch.Year = library.String(year)
			}
			if flags.Changed("pages") {
				patch.Pages = library.String(pages)
			}
			if flags.Changed("available") {
				patch.IsAvailable = library.Bool(available)
			}
			if patch.IsEmpty() {
				return errors.New("nothing to change: pass at least one field flag")
			}

			sess.view.Edit(cmd.Context(), id, patch)
			b, _ := sess.store.Snapshot().Books.Find(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %q by %s\n", view.ShortID(id), b.Title, b.Author)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&author, "author", "a", "", "New author")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "New genre")
	cmd.Flags().StringVarP(&year, "year", "y", "", "New publication year")
	cmd.Flags().StringVarP(&pages, "pages", "p", "", "New page count")
	cmd.Flags().BoolVar(&available, "available", true, "Set availability")

	return cmd
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/view"
)

func newRemoveCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <book-id> [book-id...]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove books from the shelf",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := sess.resolve(arg)
				if err != nil {
					return err
				}
				b, _ := sess.store.Snapshot().Books.Find(id)
				sess.view.Remove(cmd.Context(), id)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q\n", view.ShortID(id), b.Title)
			}
			return nil
		},
	}
}

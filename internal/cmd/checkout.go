// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/view"
)

func newCheckoutCmd(sess *session) *cobra.Command {
	return newAvailabilityCmd(sess, "checkout <book-id>", "Mark a book as checked out", false)
}

func newReturnCmd(sess *session) *cobra.Command {
	return newAvailabilityCmd(sess, "return <book-id>", "Mark a book as returned", true)
}

// newAvailabilityCmd builds checkout/return. Both only toggle when the book
// is not already in the wanted state.
func newAvailabilityCmd(sess *session, use, short string, available bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sess.resolve(args[0])
			if err != nil {
				return err
			}
			b, _ := sess.store.Snapshot().Books.Find(id)
			if b.IsAvailable == available {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is already %s\n", b.Title, availabilityLabel(available))
				return nil
			}

			sess.view.Toggle(cmd.Context(), id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q is now %s\n", view.ShortID(id), b.Title, availabilityLabel(available))
			return nil
		},
	}
}

func newToggleCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <book-id>",
		Short: "Flip a book between available and checked out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sess.resolve(args[0])
			if err != nil {
				return err
			}
			sess.view.Toggle(cmd.Context(), id)

			b, ok := sess.store.Snapshot().Books.Find(id)
			if !ok {
				return fmt.Errorf("%w: %s", ErrNoBook, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q is now %s\n", view.ShortID(id), b.Title, availabilityLabel(b.IsAvailable))
			return nil
		},
	}
}

func availabilityLabel(available bool) string {
	if available {
		return "available"
	}
	return "checked out"
}

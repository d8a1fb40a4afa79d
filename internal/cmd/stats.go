// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/view"
)

func newStatsCmd(sess *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show shelf statistics",
		Long:  `Display counts of books, available and checked-out copies, and books per genre.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := view.ComputeStats(sess.store.Snapshot().Books)

			done, err := encode(cmd.OutOrStdout(), format, st)
			if done || err != nil {
				return err
			}

			// Sort genres by count descending, then name
			type genreCount struct {
				Genre string
				Count int
			}
			var sorted []genreCount
			for g, c := range st.ByGenre {
				sorted = append(sorted, genreCount{g, c})
			}
			sort.Slice(sorted, func(i, j int) bool {
				if sorted[i].Count != sorted[j].Count {
					return sorted[i].Count > sorted[j].Count
				}
				return sorted[i].Genre < sorted[j].Genre
			})

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Shelf Statistics\n")
			fmt.Fprintf(w, "================\n\n")
			fmt.Fprintf(w, "Books:        %d\n", st.Total)
			fmt.Fprintf(w, "Available:    %d\n", st.Available)
			fmt.Fprintf(w, "Checked out:  %d\n", st.CheckedOut)
			if len(sorted) > 0 {
				fmt.Fprintln(w, "By genre:")
				for _, gc := range sorted {
					fmt.Fprintf(w, "  %s: %d\n", gc.Genre, gc.Count)
				}
			}
			return nil
		},
	}

	addOutputFlag(cmd, &format)
	return cmd
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

func addOutputFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", OutputTable, "Output format: table, json, yaml")
}

// encode writes v as JSON or YAML. It reports false for the table format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case OutputJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return true, err
	case OutputTable, "":
		return false, nil
	default:
		return true, fmt.Errorf("unsupported output format: %s (choose table, json, yaml)", format)
	}
}

// pageOutput is the machine-readable form of a page.
type pageOutput struct {
	Query      string        `json:"query,omitempty" yaml:"query,omitempty"`
	Available  library.Books `json:"available" yaml:"available"`
	CheckedOut library.Books `json:"checked_out" yaml:"checked_out"`
}

func printPage(w io.Writer, format string, page view.Page) error {
	done, err := encode(w, format, pageOutput{
		Query:      page.Query,
		Available:  nonNilBooks(page.Available),
		CheckedOut: nonNilBooks(page.CheckedOut),
	})
	if done || err != nil {
		return err
	}

	fmt.Fprintf(w, "Available (%d)\n", len(page.Available))
	printBookTable(w, page.Available)
	fmt.Fprintf(w, "\nChecked out (%d)\n", len(page.CheckedOut))
	printBookTable(w, page.CheckedOut)
	return nil
}

func printBookTable(w io.Writer, books library.Books) {
	if len(books) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle\tAuthor\tGenre\tYear\tPages")
	for _, b := range books {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			view.ShortID(b.ID), truncate(b.Title, 40), truncate(b.Author, 25), b.Genre, b.Year, b.Pages)
	}
	tw.Flush()
}

func nonNilBooks(books library.Books) library.Books {
	if books == nil {
		return library.Books{}
	}
	return books
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package view

import (
	"strings"

	"github.com/mtreilly/arc-shelf/internal/library"
)

// Filter returns the books matching query, in collection order. Title,
// author and genre match case-insensitively; pages match as typed.
// An empty query matches every book.
func Filter(books library.Books, query string) library.Books {
	if query == "" {
		return books
	}

	search := strings.ToLower(query)
	var out library.Books
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), search) ||
			strings.Contains(strings.ToLower(b.Author), search) ||
			strings.Contains(strings.ToLower(b.Genre), search) ||
			strings.Contains(b.Pages, query) {
			out = append(out, b)
		}
	}
	return out
}

// Partition splits books by availability. Every book lands in exactly one
// of the two results.
func Partition(books library.Books) (available, checkedOut library.Books) {
	for _, b := range books {
		if b.IsAvailable {
			available = append(available, b)
		} else {
			checkedOut = append(checkedOut, b)
		}
	}
	return available, checkedOut
}

// Stats summarizes a collection.
type Stats struct {
	Total      int            `json:"total" yaml:"total"`
	Available  int            `json:"available" yaml:"available"`
	CheckedOut int            `json:"checked_out" yaml:"checked_out"`
	ByGenre    map[string]int `json:"by_genre" yaml:"by_genre"`
}

// ComputeStats counts books by availability and genre. Books without a
// genre are counted under "(none)".
func ComputeStats(books library.Books) Stats {
	st := Stats{
		Total:   len(books),
		ByGenre: make(map[string]int),
	}
	for _, b := range books {
		if b.IsAvailable {
			st.Available++
		} else {
			st.CheckedOut++
		}
		genre := b.Genre
		if genre == "" {
			genre = "(none)"
		}
		st.ByGenre[genre]++
	}
	return st
}

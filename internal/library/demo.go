// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

// DemoBooks are sample books for trying out a fresh session.
func DemoBooks() []BookFields {
	return []BookFields{
		{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Year: "1965", Pages: "412"},
		{Title: "Emma", Author: "Jane Austen", Genre: "Romance", Year: "1815", Pages: "474"},
		{Title: "Solaris", Author: "Stanislaw Lem", Genre: "Science Fiction", Year: "1961", Pages: "204"},
		{Title: "The Name of the Rose", Author: "Umberto Eco", Genre: "Mystery", Year: "1980", Pages: "512"},
	}
}

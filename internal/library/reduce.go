// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

// Reduce computes the collection that follows books once action is applied.
// It is a pure function: books is never modified, and a changed result is
// always a freshly allocated slice. When the action has no effect (unknown
// id, empty patch, unrecognized or nil action) it returns books itself and
// changed is false.
//
// Rules:
//
//	ADD_BOOK             append {fields, id, available}; no-op if id is empty or already present
//	REMOVE_BOOK          drop the matching book
//	EDIT_BOOK            merge the patch over the matching book; the id is kept
//	TOGGLE_AVAILABILITY  flip IsAvailable on the matching book
func Reduce(books Books, action Action) (next Books, changed bool) {
	switch a := action.(type) {
	case AddBook:
		if a.ID == "" || books.indexOf(a.ID) >= 0 {
			return books, false
		}
		next = make(Books, len(books), len(books)+1)
		copy(next, books)
		return append(next, Book{
			ID:          a.ID,
			Title:       a.Fields.Title,
			Author:      a.Fields.Author,
			Genre:       a.Fields.Genre,
			Year:        a.Fields.Year,
			Pages:       a.Fields.Pages,
			IsAvailable: true,
		}), true

	case RemoveBook:
		i := books.indexOf(a.ID)
		if i < 0 {
			return books, false
		}
		next = make(Books, 0, len(books)-1)
		next = append(next, books[:i]...)
		return append(next, books[i+1:]...), true

	case EditBook:
		i := books.indexOf(a.ID)
		if i < 0 || a.Patch.IsEmpty() {
			return books, false
		}
		return replaceAt(books, i, a.Patch.apply(books[i])), true

	case ToggleAvailability:
		i := books.indexOf(a.ID)
		if i < 0 {
			return books, false
		}
		b := books[i]
		b.IsAvailable = !b.IsAvailable
		return replaceAt(books, i, b), true

	default:
		return books, false
	}
}

func replaceAt(books Books, i int, b Book) Books {
	next := make(Books, len(books))
	copy(next, books)
	next[i] = b
	return next
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

// Book is one inventory entry.
type Book struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Genre       string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Year        string `json:"year,omitempty" yaml:"year,omitempty"`   // Free text, not validated
	Pages       string `json:"pages,omitempty" yaml:"pages,omitempty"` // Free text, not validated
	IsAvailable bool   `json:"is_available" yaml:"is_available"`
}

// BookFields are the caller-supplied fields of a new book.
type BookFields struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Genre  string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Year   string `json:"year,omitempty" yaml:"year,omitempty"`
	Pages  string `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// BookPatch is a partial update. Nil fields are left untouched.
// It has no ID field, so an edit cannot re-key a book.
type BookPatch struct {
	Title       *string `json:"title,omitempty" yaml:"title,omitempty"`
	Author      *string `json:"author,omitempty" yaml:"author,omitempty"`
	Genre       *string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Year        *string `json:"year,omitempty" yaml:"year,omitempty"`
	Pages       *string `json:"pages,omitempty" yaml:"pages,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty" yaml:"is_available,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Genre == nil &&
		p.Year == nil && p.Pages == nil && p.IsAvailable == nil
}

// apply returns b with the patch merged over it.
func (p BookPatch) apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.IsAvailable != nil {
		b.IsAvailable = *p.IsAvailable
	}
	return b
}

// Books is an ordered collection of books. A Books value handed out by
// the store is a snapshot and must not be modified in place.
type Books []Book

// Find returns the book with the given id.
func (bs Books) Find(id string) (Book, bool) {
	if i := bs.indexOf(id); i >= 0 {
		return bs[i], true
	}
	return Book{}, false
}

// IDs returns the ids in collection order.
func (bs Books) IDs() []string {
	ids := make([]string, len(bs))
	for i, b := range bs {
		ids[i] = b.ID
	}
	return ids
}

func (bs Books) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range bs {
		if bs[i].ID == id {
			return i
		}
	}
	return -1
}

// Snapshot is the store state after a transition. Version increases by one
// for every dispatched action that changed the collection.
type Snapshot struct {
	Books   Books  `json:"books" yaml:"books"`
	Version uint64 `json:"version" yaml:"version"`
}

// String is a convenience for building patches.
func String(s string) *string { return &s }

// Bool is a convenience for building patches.
func Bool(b bool) *bool { return &b }

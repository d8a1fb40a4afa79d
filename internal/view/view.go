// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package view holds the presentation side of a shelf session: the draft
// book being composed, the live search string, and the filtered,
// partitioned page rendered from the latest store snapshot.
package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mtreilly/arc-shelf/internal/library"
)

// Page is everything needed to render the inventory screen.
type Page struct {
	Query      string        `json:"query"`
	Available  library.Books `json:"available"`
	CheckedOut library.Books `json:"checked_out"`
	Stats      Stats         `json:"stats"`
	Draft      Draft         `json:"draft"`
	Error      string        `json:"error,omitempty"`
	Version    uint64        `json:"version"`
}

// View is one session's presentation state. Draft and search are local to
// the view and never reach the store; everything else is derived from the
// store's latest snapshot.
type View struct {
	shelf  library.Shelf
	cancel func()

	mu    sync.Mutex
	snap  library.Snapshot
	draft Draft
	query string
	err   string
	page  Page
}

// New creates a view bound to shelf. Call Close to stop listening.
func New(shelf library.Shelf) *View {
	v := &View{shelf: shelf}
	v.cancel = shelf.Subscribe(v.onChange)

	v.mu.Lock()
	defer v.mu.Unlock()
	if snap := shelf.Snapshot(); snap.Version >= v.snap.Version {
		v.snap = snap
	}
	v.rebuildLocked()
	return v
}

// Close unsubscribes the view from its shelf.
func (v *View) Close() {
	v.cancel()
}

func (v *View) onChange(snap library.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if snap.Version < v.snap.Version {
		return
	}
	v.snap = snap
	v.rebuildLocked()
}

func (v *View) rebuildLocked() {
	filtered := Filter(v.snap.Books, v.query)
	available, checkedOut := Partition(filtered)
	v.page = Page{
		Query:      v.query,
		Available:  available,
		CheckedOut: checkedOut,
		Stats:      ComputeStats(v.snap.Books),
		Draft:      v.draft,
		Error:      v.err,
		Version:    v.snap.Version,
	}
}

// Page returns the most recently built page.
func (v *View) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// SetDraft replaces the draft book.
func (v *View) SetDraft(d Draft) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = d
	v.err = ""
	v.rebuildLocked()
}

// Draft returns the draft book.
func (v *View) Draft() Draft {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// SetSearch replaces the search string and refilters.
func (v *View) SetSearch(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
	v.rebuildLocked()
}

// Search returns the current search string.
func (v *View) Search() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Add submits the current draft. Nothing is dispatched unless both title
// and author are present; in that case the draft is kept and the error is
// returned. On success the draft is cleared and the new book's id is
// returned.
func (v *View) Add(ctx context.Context) (string, error) {
	v.mu.Lock()
	action, err := v.admitLocked(v.draft)
	v.mu.Unlock()
	if err != nil {
		return "", err
	}
	v.shelf.Dispatch(ctx, action)
	return action.ID, nil
}

// Submit replaces the draft with d and submits it in one step, so
// concurrent callers cannot overwrite each other's draft in between.
func (v *View) Submit(ctx context.Context, d Draft) (string, error) {
	v.mu.Lock()
	action, err := v.admitLocked(d)
	v.mu.Unlock()
	if err != nil {
		return "", err
	}
	v.shelf.Dispatch(ctx, action)
	return action.ID, nil
}

// admitLocked runs the add guard on d. A rejected draft is kept with its
// error; an admitted one clears the draft and yields the add action.
func (v *View) admitLocked(d Draft) (library.AddBook, error) {
	v.draft = d
	if err := d.Validate(); err != nil {
		v.err = err.Error()
		v.rebuildLocked()
		return library.AddBook{}, err
	}
	v.draft = Draft{}
	v.err = ""
	v.rebuildLocked()
	return library.NewAddBook(d.Fields()), nil
}

// Toggle flips a book between available and checked out.
func (v *View) Toggle(ctx context.Context, id string) {
	v.shelf.Dispatch(ctx, library.NewToggleAvailability(id))
}

// Remove deletes a book.
func (v *View) Remove(ctx context.Context, id string) {
	v.shelf.Dispatch(ctx, library.NewRemoveBook(id))
}

// Edit merges patch into a book.
func (v *View) Edit(ctx context.Context, id string, patch library.BookPatch) {
	v.shelf.Dispatch(ctx, library.NewEditBook(id, patch))
}

// Render writes the current page as HTML.
func (v *View) Render(w io.Writer) error {
	return renderPage(w, v.Page())
}

// Present sets the search string and renders the resulting page as one step.
func (v *View) Present(w io.Writer, query string) error {
	v.mu.Lock()
	v.query = query
	v.rebuildLocked()
	page := v.page
	v.mu.Unlock()
	return renderPage(w, page)
}

func renderPage(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

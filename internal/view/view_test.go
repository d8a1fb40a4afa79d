// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package view_test

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

// recordingShelf counts dispatches that reach the store.
type recordingShelf struct {
	*library.Store

	mu         sync.Mutex
	dispatched []library.Action
}

func (r *recordingShelf) Dispatch(ctx context.Context, action library.Action) library.Snapshot {
	r.mu.Lock()
	r.dispatched = append(r.dispatched, action)
	r.mu.Unlock()
	return r.Store.Dispatch(ctx, action)
}

func newSession(t *testing.T) (*recordingShelf, *view.View) {
	t.Helper()
	shelf := &recordingShelf{Store: library.NewStore()}
	v := view.New(shelf)
	t.Cleanup(v.Close)
	return shelf, v
}

func TestViewAddDispatchesAndClearsDraft(t *testing.T) {
	// arrange
	ctx := context.Background()
	shelf, v := newSession(t)
	v.SetDraft(view.Draft{Title: "Dune", Author: "Herbert", Pages: "412"})

	// act
	id, err := v.Add(ctx)

	// assert
	require.NoError(t, err)
	require.Len(t, shelf.dispatched, 1)
	assert.Equal(t, library.ActionAddBook, shelf.dispatched[0].ActionType())
	assert.Equal(t, view.Draft{}, v.Draft())

	page := v.Page()
	require.Len(t, page.Available, 1)
	assert.Equal(t, id, page.Available[0].ID)
	assert.Empty(t, page.CheckedOut)
	assert.Equal(t, uint64(1), page.Version)
}

func TestViewAddEmptyTitleNeverReachesStore(t *testing.T) {
	// arrange
	ctx := context.Background()
	shelf, v := newSession(t)
	draft := view.Draft{Title: "", Author: "X"}
	v.SetDraft(draft)

	// act
	_, err := v.Add(ctx)

	// assert
	require.ErrorIs(t, err, view.ErrIncompleteDraft)
	assert.Contains(t, err.Error(), "title")
	assert.Empty(t, shelf.dispatched)
	assert.Empty(t, shelf.Snapshot().Books)
	assert.Equal(t, draft, v.Draft(), "draft is kept for correction")
	assert.NotEmpty(t, v.Page().Error)
}

func TestViewAddEmptyAuthorNeverReachesStore(t *testing.T) {
	ctx := context.Background()
	shelf, v := newSession(t)
	v.SetDraft(view.Draft{Title: "Dune"})

	_, err := v.Add(ctx)

	require.ErrorIs(t, err, view.ErrIncompleteDraft)
	assert.Contains(t, err.Error(), "author")
	assert.Empty(t, shelf.dispatched)
}

func TestViewDuneScenario(t *testing.T) {
	// arrange
	ctx := context.Background()
	shelf, v := newSession(t)
	v.SetDraft(view.Draft{Title: "Dune", Author: "Herbert"})

	// act + assert
	id, err := v.Add(ctx)
	require.NoError(t, err)
	require.Len(t, shelf.Snapshot().Books, 1)
	assert.True(t, shelf.Snapshot().Books[0].IsAvailable)

	v.Toggle(ctx, id)
	page := v.Page()
	assert.Empty(t, page.Available)
	require.Len(t, page.CheckedOut, 1)
	assert.False(t, page.CheckedOut[0].IsAvailable)

	v.Remove(ctx, id)
	assert.Empty(t, shelf.Snapshot().Books)
	assert.Empty(t, v.Page().CheckedOut)
}

func TestViewSetSearchFiltersPage(t *testing.T) {
	// arrange
	ctx := context.Background()
	_, v := newSession(t)
	for _, d := range []view.Draft{
		{Title: "Dune", Author: "Herbert", Genre: "SF"},
		{Title: "Emma", Author: "Austen", Genre: "Romance"},
	} {
		v.SetDraft(d)
		_, err := v.Add(ctx)
		require.NoError(t, err)
	}

	// act
	v.SetSearch("austen")

	// assert
	page := v.Page()
	require.Len(t, page.Available, 1)
	assert.Equal(t, "Emma", page.Available[0].Title)
	assert.Equal(t, 2, page.Stats.Total, "stats cover the whole collection")
	assert.Equal(t, "austen", v.Search())
}

func TestViewEdit(t *testing.T) {
	ctx := context.Background()
	shelf, v := newSession(t)
	v.SetDraft(view.Draft{Title: "Dune", Author: "Herbert"})
	id, err := v.Add(ctx)
	require.NoError(t, err)

	v.Edit(ctx, id, library.BookPatch{Year: library.String("1965")})

	b, ok := shelf.Snapshot().Books.Find(id)
	require.True(t, ok)
	assert.Equal(t, "1965", b.Year)
	assert.Equal(t, "Dune", b.Title)
}

func TestViewCloseStopsUpdates(t *testing.T) {
	ctx := context.Background()
	shelf, v := newSession(t)
	v.Close()

	shelf.Dispatch(ctx, library.NewAddBook(library.BookFields{Title: "Dune", Author: "Herbert"}))

	assert.Empty(t, v.Page().Available)
}

func TestViewPresentRendersBothLists(t *testing.T) {
	// arrange
	ctx := context.Background()
	_, v := newSession(t)
	v.SetDraft(view.Draft{Title: "Dune", Author: "Herbert"})
	dune, err := v.Add(ctx)
	require.NoError(t, err)
	v.SetDraft(view.Draft{Title: "<Emma>", Author: "Austen"})
	_, err = v.Add(ctx)
	require.NoError(t, err)
	v.Toggle(ctx, dune)

	// act
	var buf bytes.Buffer
	err = v.Present(&buf, "")

	// assert
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "&lt;Emma&gt;", "titles are escaped")
	assert.Contains(t, html, "/books/"+dune+"/toggle")
	assert.Contains(t, html, "Return")
	assert.Contains(t, html, "Check out")
}

func TestViewRenderShowsValidationError(t *testing.T) {
	ctx := context.Background()
	_, v := newSession(t)
	v.SetDraft(view.Draft{Author: "Herbert"})
	_, err := v.Add(ctx)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))

	assert.Contains(t, buf.String(), "missing title")
	assert.Contains(t, buf.String(), `value="Herbert"`)
}

func TestViewSubmitConcurrentDraftsAreNotLost(t *testing.T) {
	// arrange
	ctx := context.Background()
	shelf, v := newSession(t)
	const writers = 16

	// act
	ids := make([]string, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], errs[i] = v.Submit(ctx, view.Draft{Title: fmt.Sprintf("Book %d", i), Author: "Anon"})
		}()
	}
	wg.Wait()

	// assert
	for i := range writers {
		require.NoError(t, errs[i])
		b, ok := shelf.Snapshot().Books.Find(ids[i])
		require.True(t, ok, "book %d was added", i)
		assert.Equal(t, fmt.Sprintf("Book %d", i), b.Title)
	}
	assert.Len(t, shelf.dispatched, writers)
	assert.Equal(t, view.Draft{}, v.Draft())
}

func TestViewSubmitRejectedDraftIsKept(t *testing.T) {
	ctx := context.Background()
	shelf, v := newSession(t)
	draft := view.Draft{Author: "Herbert"}

	_, err := v.Submit(ctx, draft)

	require.ErrorIs(t, err, view.ErrIncompleteDraft)
	assert.Empty(t, shelf.dispatched)
	assert.Equal(t, draft, v.Draft())
	assert.Contains(t, v.Page().Error, "missing title")
}

func TestViewPresentOffersEditForm(t *testing.T) {
	ctx := context.Background()
	_, v := newSession(t)
	id, err := v.Submit(ctx, view.Draft{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.Present(&buf, ""))

	assert.Contains(t, buf.String(), "/books/"+id+"/edit")
	assert.Contains(t, buf.String(), `placeholder="Dune"`)
}

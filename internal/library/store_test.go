// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtreilly/arc-shelf/internal/library"
)

func TestStoreStartsEmpty(t *testing.T) {
	s := library.NewStore()

	snap := s.Snapshot()

	assert.Empty(t, snap.Books)
	assert.Zero(t, snap.Version)
}

func TestStoreDispatchBumpsVersionOnlyOnChange(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := library.NewStore()
	add := library.NewAddBook(library.BookFields{Title: "Dune", Author: "Herbert"})

	// act
	afterAdd := s.Dispatch(ctx, add)
	afterNoOp := s.Dispatch(ctx, library.NewRemoveBook("missing"))
	afterNil := s.Dispatch(ctx, nil)

	// assert
	assert.Equal(t, uint64(1), afterAdd.Version)
	assert.Equal(t, uint64(1), afterNoOp.Version)
	assert.Equal(t, uint64(1), afterNil.Version)
	assert.Equal(t, afterAdd.Books, s.Snapshot().Books)
}

func TestStoreDispatchPreviousSnapshotStaysIntact(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := library.NewStore()
	add := library.NewAddBook(library.BookFields{Title: "Dune", Author: "Herbert"})
	first := s.Dispatch(ctx, add)

	// act
	s.Dispatch(ctx, library.NewToggleAvailability(add.ID))
	s.Dispatch(ctx, library.NewAddBook(library.BookFields{Title: "Emma", Author: "Austen"}))

	// assert
	require.Len(t, first.Books, 1)
	assert.True(t, first.Books[0].IsAvailable)
	assert.Len(t, s.Snapshot().Books, 2)
}

func TestStoreSubscribeNotifiedInOrderOnChange(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := library.NewStore()
	var versions []uint64
	var order []string
	cancelA := s.Subscribe(func(snap library.Snapshot) {
		versions = append(versions, snap.Version)
		order = append(order, "a")
	})
	defer cancelA()
	cancelB := s.Subscribe(func(library.Snapshot) {
		order = append(order, "b")
	})

	// act
	add := library.NewAddBook(library.BookFields{Title: "Dune", Author: "Herbert"})
	s.Dispatch(ctx, add)
	s.Dispatch(ctx, library.NewRemoveBook("missing"))
	cancelB()
	cancelB()
	s.Dispatch(ctx, library.NewToggleAvailability(add.ID))

	// assert
	assert.Equal(t, []uint64{1, 2}, versions)
	assert.Equal(t, []string{"a", "b", "a"}, order)
}

func TestStoreSubscribeSubscriberCanReadSnapshot(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := library.NewStore()
	var seen int
	s.Subscribe(func(library.Snapshot) {
		seen = len(s.Snapshot().Books)
	})

	// act
	s.Dispatch(ctx, library.NewAddBook(library.BookFields{Title: "Dune", Author: "Herbert"}))

	// assert
	assert.Equal(t, 1, seen)
}

func TestStoreWithInitialBooks(t *testing.T) {
	// arrange
	seed := library.Books{{ID: "b1", Title: "Dune", Author: "Herbert", IsAvailable: true}}

	// act
	s := library.NewStore(library.WithInitialBooks(seed))
	seed[0].Title = "changed"

	// assert
	assert.Equal(t, "Dune", s.Snapshot().Books[0].Title)
}

func TestStoreDispatchConcurrentAddsAreAllApplied(t *testing.T) {
	// arrange
	ctx := context.Background()
	s := library.NewStore()
	const workers, perWorker = 8, 25

	// act
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Dispatch(ctx, library.NewAddBook(library.BookFields{Title: "T", Author: "A"}))
			}
		}()
	}
	wg.Wait()

	// assert
	snap := s.Snapshot()
	assert.Len(t, snap.Books, workers*perWorker)
	assert.Equal(t, uint64(workers*perWorker), snap.Version)
}

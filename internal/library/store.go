// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"log/slog"
	"sync"
)

// Subscriber is notified with the new snapshot after every dispatch that
// changed the collection. Subscribers may call Snapshot but must not
// call Dispatch.
type Subscriber func(Snapshot)

// Store owns the session's book collection. It is the only writer: every
// change goes through Dispatch, one action at a time.
type Store struct {
	dispatchMu sync.Mutex // serializes reduce + notify

	mu      sync.RWMutex
	books   Books
	version uint64
	subs    []subscription
	nextSub int

	logger *slog.Logger
}

type subscription struct {
	id int
	fn Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInitialBooks seeds the collection. The slice is copied.
func WithInitialBooks(books Books) Option {
	return func(s *Store) {
		s.books = append(Books(nil), books...)
	}
}

// NewStore creates a store holding an empty collection.
func NewStore(opts ...Option) *Store {
	s := &Store{
		books:  Books{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current collection and its version.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Books: s.books, Version: s.version}
}

// Dispatch applies action and returns the resulting snapshot. Actions that
// change nothing leave the version untouched and notify no one.
func (s *Store) Dispatch(ctx context.Context, action Action) Snapshot {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next, changed := Reduce(s.books, action)
	if changed {
		s.books = next
		s.version++
	}
	snap := Snapshot{Books: s.books, Version: s.version}
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	actionType := "unknown"
	if action != nil {
		actionType = action.ActionType()
	}
	s.logger.DebugContext(ctx, "dispatch",
		"action", actionType,
		"changed", changed,
		"version", snap.Version,
		"books", len(snap.Books),
	)

	if !changed {
		return snap
	}
	for _, sub := range subs {
		sub.fn(snap)
	}
	return snap
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

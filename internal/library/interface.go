// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import "context"

// Shelf is the state container the presentation surfaces talk to.
type Shelf interface {
	// Snapshot returns the current collection.
	Snapshot() Snapshot
	// Dispatch applies one action and returns the resulting snapshot.
	Dispatch(ctx context.Context, action Action) Snapshot
	// Subscribe registers a change listener.
	Subscribe(fn Subscriber) (cancel func())
}

var _ Shelf = (*Store)(nil)

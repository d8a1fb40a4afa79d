// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"github.com/google/uuid"
)

// Action type identifiers, used for logging.
const (
	ActionAddBook            = "ADD_BOOK"
	ActionRemoveBook         = "REMOVE_BOOK"
	ActionEditBook           = "EDIT_BOOK"
	ActionToggleAvailability = "TOGGLE_AVAILABILITY"
)

// Action is a discrete request to change the collection.
// The set of variants is closed: AddBook, RemoveBook, EditBook and
// ToggleAvailability.
type Action interface {
	ActionType() string
	isAction()
}

// AddBook appends a new available book.
type AddBook struct {
	ID     string
	Fields BookFields
}

// RemoveBook deletes the book with ID.
type RemoveBook struct {
	ID string
}

// EditBook merges Patch over the book with ID.
type EditBook struct {
	ID    string
	Patch BookPatch
}

// ToggleAvailability flips the checked-out flag of the book with ID.
type ToggleAvailability struct {
	ID string
}

func (AddBook) ActionType() string            { return ActionAddBook }
func (RemoveBook) ActionType() string         { return ActionRemoveBook }
func (EditBook) ActionType() string           { return ActionEditBook }
func (ToggleAvailability) ActionType() string { return ActionToggleAvailability }

func (AddBook) isAction()            {}
func (RemoveBook) isAction()         {}
func (EditBook) isAction()           {}
func (ToggleAvailability) isAction() {}

// NewAddBook builds an AddBook carrying a freshly generated id.
// The store performs no validation; callers guard title and author.
func NewAddBook(fields BookFields) AddBook {
	return AddBook{
		ID:     uuid.NewString(),
		Fields: fields,
	}
}

// NewRemoveBook builds a RemoveBook action.
func NewRemoveBook(id string) RemoveBook {
	return RemoveBook{ID: id}
}

// NewEditBook builds an EditBook action.
func NewEditBook(id string, patch BookPatch) EditBook {
	return EditBook{ID: id, Patch: patch}
}

// NewToggleAvailability builds a ToggleAvailability action.
func NewToggleAvailability(id string) ToggleAvailability {
	return ToggleAvailability{ID: id}
}

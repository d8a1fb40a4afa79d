// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package web

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listResponse struct {
	Query      string        `json:"query"`
	Available  library.Books `json:"available"`
	CheckedOut library.Books `json:"checked_out"`
	Stats      view.Stats    `json:"stats"`
	Version    uint64        `json:"version"`
}

type bookResponse struct {
	Book    *library.Book `json:"book"`
	Version uint64        `json:"version"`
}

// GET /api/books?q=
func (s *Server) apiList(c echo.Context) error {
	q := c.QueryParam("q")
	snap := s.shelf.Snapshot()
	available, checkedOut := view.Partition(view.Filter(snap.Books, q))
	return writeJSON(c, http.StatusOK, listResponse{
		Query:      q,
		Available:  nonNil(available),
		CheckedOut: nonNil(checkedOut),
		Stats:      view.ComputeStats(snap.Books),
		Version:    snap.Version,
	})
}

// POST /api/books
func (s *Server) apiAdd(c echo.Context) error {
	var d view.Draft
	if err := json.NewDecoder(c.Request().Body).Decode(&d); err != nil {
		return writeJSON(c, http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&d); err != nil {
		return writeJSON(c, http.StatusUnprocessableEntity, echo.Map{
			"message": "validation error",
			"error":   err.Error(),
		})
	}

	action := library.NewAddBook(d.Fields())
	snap := s.shelf.Dispatch(c.Request().Context(), action)
	return writeJSON(c, http.StatusCreated, bookOf(snap, action.ID))
}

// PATCH /api/books/:id
func (s *Server) apiEdit(c echo.Context) error {
	var p library.BookPatch
	if err := json.NewDecoder(c.Request().Body).Decode(&p); err != nil {
		return writeJSON(c, http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	id := c.Param("id")
	snap := s.shelf.Dispatch(c.Request().Context(), library.NewEditBook(id, p))
	return writeJSON(c, http.StatusOK, bookOf(snap, id))
}

// POST /api/books/:id/toggle
func (s *Server) apiToggle(c echo.Context) error {
	id := c.Param("id")
	snap := s.shelf.Dispatch(c.Request().Context(), library.NewToggleAvailability(id))
	return writeJSON(c, http.StatusOK, bookOf(snap, id))
}

// DELETE /api/books/:id
func (s *Server) apiDelete(c echo.Context) error {
	snap := s.shelf.Dispatch(c.Request().Context(), library.NewRemoveBook(c.Param("id")))
	return writeJSON(c, http.StatusOK, bookResponse{Version: snap.Version})
}

func bookOf(snap library.Snapshot, id string) bookResponse {
	resp := bookResponse{Version: snap.Version}
	if b, ok := snap.Books.Find(id); ok {
		resp.Book = &b
	}
	return resp
}

func nonNil(books library.Books) library.Books {
	if books == nil {
		return library.Books{}
	}
	return books
}

func writeJSON(c echo.Context, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, data)
}

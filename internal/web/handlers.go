// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

// GET /
func (s *Server) index(c echo.Context) error {
	return s.renderPage(c, http.StatusOK, c.QueryParam("q"))
}

// POST /books
func (s *Server) addBook(c echo.Context) error {
	var d view.Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	q := c.FormValue("q")

	if _, err := s.view.Submit(c.Request().Context(), d); err != nil {
		if errors.Is(err, view.ErrIncompleteDraft) {
			return s.renderPage(c, http.StatusUnprocessableEntity, q)
		}
		return err
	}
	return redirectHome(c, q)
}

// POST /books/:id/toggle
func (s *Server) toggleBook(c echo.Context) error {
	s.view.Toggle(c.Request().Context(), c.Param("id"))
	return redirectHome(c, c.FormValue("q"))
}

// POST /books/:id/delete
func (s *Server) deleteBook(c echo.Context) error {
	s.view.Remove(c.Request().Context(), c.Param("id"))
	return redirectHome(c, c.FormValue("q"))
}

// POST /books/:id/edit
func (s *Server) editBook(c echo.Context) error {
	patch, err := patchFromForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.view.Edit(c.Request().Context(), c.Param("id"), patch)
	return redirectHome(c, c.FormValue("q"))
}

func (s *Server) renderPage(c echo.Context, status int, q string) error {
	var buf bytes.Buffer
	if err := s.view.Present(&buf, q); err != nil {
		s.log.Error("render page", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed")
	}
	return c.HTMLBlob(status, buf.Bytes())
}

func redirectHome(c echo.Context, q string) error {
	target := "/"
	if q != "" {
		target += "?q=" + url.QueryEscape(q)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// patchFromForm builds a patch from the non-empty edit form fields.
func patchFromForm(c echo.Context) (library.BookPatch, error) {
	var p library.BookPatch
	set := func(name string) *string {
		if v := c.FormValue(name); v != "" {
			return library.String(v)
		}
		return nil
	}
	p.Title = set("title")
	p.Author = set("author")
	p.Genre = set("genre")
	p.Year = set("year")
	p.Pages = set("pages")

	if v := c.FormValue("is_available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, errors.New("is_available must be true or false")
		}
		p.IsAvailable = library.Bool(b)
	}
	return p, nil
}

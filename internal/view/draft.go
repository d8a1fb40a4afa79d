// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mtreilly/arc-shelf/internal/library"
)

// ErrIncompleteDraft is returned when a draft lacks title or author.
var ErrIncompleteDraft = errors.New("title and author are required")

var validate = validator.New()

// Draft is the add-book form being composed.
type Draft struct {
	Title  string `json:"title" form:"title" validate:"required"`
	Author string `json:"author" form:"author" validate:"required"`
	Genre  string `json:"genre" form:"genre"`
	Year   string `json:"year" form:"year"`
	Pages  string `json:"pages" form:"pages"`
}

// Validate runs the presence check on title and author. The returned
// error wraps ErrIncompleteDraft and names the missing fields.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate draft: %w", err)
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: missing %s", ErrIncompleteDraft, strings.Join(missing, ", "))
}

// Fields converts the draft into the fields of a new book.
func (d Draft) Fields() library.BookFields {
	return library.BookFields{
		Title:  d.Title,
		Author: d.Author,
		Genre:  d.Genre,
		Year:   d.Year,
		Pages:  d.Pages,
	}
}
